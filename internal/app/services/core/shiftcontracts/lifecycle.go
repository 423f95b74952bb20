package shiftcontracts

import (
	"plantao-service/internal/app/contracts"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"time"
)

type state struct {
	status     string
	attendance string
}

// transitions lists, per action, the only state it may start from and the
// state it leaves behind. Completed and canceled contracts have no outgoing edge.
var transitions = map[string]struct{ from, to state }{
	constvars.ContractActionCheckIn: {
		from: state{constvars.ContractStatusUpcoming, constvars.AttendanceAwaitingCheckIn},
		to:   state{constvars.ContractStatusUpcoming, constvars.AttendanceCheckedIn},
	},
	constvars.ContractActionCheckOut: {
		from: state{constvars.ContractStatusUpcoming, constvars.AttendanceCheckedIn},
		to:   state{constvars.ContractStatusCompleted, constvars.AttendanceCheckedOut},
	},
	constvars.ContractActionCancel: {
		from: state{constvars.ContractStatusUpcoming, constvars.AttendanceAwaitingCheckIn},
		to:   state{constvars.ContractStatusCanceled, constvars.AttendanceAwaitingCheckIn},
	},
}

// CanTransition reports whether action is allowed from the contract's stored state.
func CanTransition(contract *models.Contract, action string) bool {
	rule, ok := transitions[action]
	if !ok {
		return false
	}
	return contract.Status == rule.from.status && contract.Attendance == rule.from.attendance
}

func NextAction(contract *models.Contract) string {
	switch {
	case CanTransition(contract, constvars.ContractActionCheckIn):
		return constvars.NextActionCheckIn
	case CanTransition(contract, constvars.ContractActionCheckOut):
		return constvars.NextActionCheckOut
	default:
		return constvars.NextActionNone
	}
}

// buildTransition returns the conditional update for action at now. The caller
// must have checked CanTransition.
func buildTransition(action string, now time.Time) contracts.ContractTransition {
	rule := transitions[action]
	transition := contracts.ContractTransition{
		FromStatus:     rule.from.status,
		FromAttendance: rule.from.attendance,
		ToStatus:       rule.to.status,
		ToAttendance:   rule.to.attendance,
		UpdatedAt:      now,
	}
	switch action {
	case constvars.ContractActionCheckIn:
		transition.CheckInTime = &now
	case constvars.ContractActionCheckOut:
		transition.CheckOutTime = &now
	case constvars.ContractActionCancel:
		transition.CanceledAt = &now
	}
	return transition
}

func applyToModel(contract *models.Contract, transition contracts.ContractTransition) {
	contract.Status = transition.ToStatus
	contract.Attendance = transition.ToAttendance
	contract.UpdatedAt = transition.UpdatedAt
	if transition.CheckInTime != nil {
		contract.CheckInTime = transition.CheckInTime
	}
	if transition.CheckOutTime != nil {
		contract.CheckOutTime = transition.CheckOutTime
	}
	if transition.CanceledAt != nil {
		contract.CanceledAt = transition.CanceledAt
	}
}
