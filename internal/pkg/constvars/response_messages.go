package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccessMessage       = "account created successfully"
	LoginSuccessMessage          = "successfully login"
	LogoutSuccessMessage         = "successfully logout"
	ForgotPasswordSuccessMessage = "reset password link already sent to your email"
	ResetPasswordSuccessMessage  = "password already reset successfully"
	GetCurrentUserSuccessMessage = "get current user successfully"

	// Availability messages
	SubmitAvailabilitySuccessMessage  = "availability saved"
	SubmitAvailabilityPartialMessage  = "availability saved, some dates were skipped"
	SubmitAvailabilityConflictMessage = "no date could be saved because of conflicts"
	ListSlotsSuccessMessage           = "get availability successfully"
	UpdateSlotSuccessMessage          = "slot updated successfully"
	DeleteSlotSuccessMessage          = "slot deleted successfully"

	// Proposal messages
	CreateProposalSuccessMessage = "proposal created successfully"
	ListProposalsSuccessMessage  = "get proposals successfully"
	GetProposalSuccessMessage    = "get proposal successfully"
	AcceptProposalSuccessMessage = "proposal accepted, contract signed"
	RejectProposalSuccessMessage = "proposal rejected"

	// Contract messages
	ListContractsSuccessMessage  = "get contracts successfully"
	GetContractSuccessMessage    = "get contract successfully"
	CheckInSuccessMessage        = "check-in recorded"
	CheckOutSuccessMessage       = "check-out recorded"
	CancelContractSuccessMessage = "contract canceled"

	// Profile messages
	GetProfileSuccessMessage          = "get profile successfully"
	UpdateProfileSuccessMessage       = "profile updated successfully"
	UploadPhotoSuccessMessage         = "profile photo uploaded successfully"
	UploadDocumentSuccessMessage      = "document uploaded successfully"
	FinalizeDocumentsSuccessMessage   = "documents submitted successfully"
	EnrollFaceSuccessMessage          = "reference photo registered successfully"
	GetDashboardSummarySuccessMessage = "get dashboard summary successfully"
)
