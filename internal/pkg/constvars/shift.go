package constvars

const (
	ProposalStatusPending  = "pending"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

const (
	ContractStatusUpcoming  = "upcoming"
	ContractStatusCompleted = "completed"
	ContractStatusCanceled  = "canceled"
)

// Attendance states persisted on a contract.
const (
	AttendanceAwaitingCheckIn = "awaiting_check_in"
	AttendanceCheckedIn       = "checked_in"
	AttendanceCheckedOut      = "checked_out"
)

const (
	NextActionCheckIn  = "check_in"
	NextActionCheckOut = "check_out"
	NextActionNone     = "none"
)

const (
	LocationPermissionDenied = "denied"
	EarthRadiusInMeters      = 6371000.0
)

const (
	DashboardUpcomingShiftsLimit  = 2
	DashboardRecentProposalsLimit = 3
)

// Reasons reported for dates skipped by an availability submission.
const (
	SkipReasonSlotConflict = "slot_conflict"
)

// Actions a doctor can take on a contract.
const (
	ContractActionCheckIn  = "check_in"
	ContractActionCheckOut = "check_out"
	ContractActionCancel   = "cancel"
)

const (
	ContractLockTTLInSeconds = 30
)
