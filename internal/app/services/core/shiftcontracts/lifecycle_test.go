package shiftcontracts

import (
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	awaiting := &models.Contract{Status: constvars.ContractStatusUpcoming, Attendance: constvars.AttendanceAwaitingCheckIn}
	checkedIn := &models.Contract{Status: constvars.ContractStatusUpcoming, Attendance: constvars.AttendanceCheckedIn}
	completed := &models.Contract{Status: constvars.ContractStatusCompleted, Attendance: constvars.AttendanceCheckedOut}
	canceled := &models.Contract{Status: constvars.ContractStatusCanceled, Attendance: constvars.AttendanceAwaitingCheckIn}

	tests := []struct {
		name     string
		contract *models.Contract
		action   string
		want     bool
	}{
		{"check-in while awaiting", awaiting, constvars.ContractActionCheckIn, true},
		{"check-out without check-in", awaiting, constvars.ContractActionCheckOut, false},
		{"cancel while awaiting", awaiting, constvars.ContractActionCancel, true},
		{"second check-in", checkedIn, constvars.ContractActionCheckIn, false},
		{"check-out after check-in", checkedIn, constvars.ContractActionCheckOut, true},
		{"cancel after check-in", checkedIn, constvars.ContractActionCancel, false},
		{"completed is terminal for check-in", completed, constvars.ContractActionCheckIn, false},
		{"completed is terminal for check-out", completed, constvars.ContractActionCheckOut, false},
		{"completed is terminal for cancel", completed, constvars.ContractActionCancel, false},
		{"canceled is terminal for check-in", canceled, constvars.ContractActionCheckIn, false},
		{"canceled is terminal for cancel", canceled, constvars.ContractActionCancel, false},
		{"unknown action", awaiting, "teleport", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.contract, tt.action))
		})
	}
}

func TestNextAction(t *testing.T) {
	assert.Equal(t, constvars.NextActionCheckIn, NextAction(&models.Contract{
		Status: constvars.ContractStatusUpcoming, Attendance: constvars.AttendanceAwaitingCheckIn,
	}))
	assert.Equal(t, constvars.NextActionCheckOut, NextAction(&models.Contract{
		Status: constvars.ContractStatusUpcoming, Attendance: constvars.AttendanceCheckedIn,
	}))
	assert.Equal(t, constvars.NextActionNone, NextAction(&models.Contract{
		Status: constvars.ContractStatusCompleted, Attendance: constvars.AttendanceCheckedOut,
	}))
	assert.Equal(t, constvars.NextActionNone, NextAction(&models.Contract{
		Status: constvars.ContractStatusCanceled, Attendance: constvars.AttendanceAwaitingCheckIn,
	}))
}

func TestBuildTransition(t *testing.T) {
	now := time.Date(2025, 6, 15, 19, 2, 0, 0, time.UTC)

	checkOut := buildTransition(constvars.ContractActionCheckOut, now)
	assert.Equal(t, constvars.ContractStatusUpcoming, checkOut.FromStatus)
	assert.Equal(t, constvars.AttendanceCheckedIn, checkOut.FromAttendance)
	assert.Equal(t, constvars.ContractStatusCompleted, checkOut.ToStatus)
	assert.Equal(t, constvars.AttendanceCheckedOut, checkOut.ToAttendance)
	assert.Nil(t, checkOut.CheckInTime)
	if assert.NotNil(t, checkOut.CheckOutTime) {
		assert.Equal(t, now, *checkOut.CheckOutTime)
	}

	cancel := buildTransition(constvars.ContractActionCancel, now)
	assert.Equal(t, constvars.ContractStatusCanceled, cancel.ToStatus)
	assert.NotNil(t, cancel.CanceledAt)

	contract := &models.Contract{Status: constvars.ContractStatusUpcoming, Attendance: constvars.AttendanceAwaitingCheckIn}
	applyToModel(contract, buildTransition(constvars.ContractActionCheckIn, now))
	assert.Equal(t, constvars.AttendanceCheckedIn, contract.Attendance)
	assert.Equal(t, constvars.ContractStatusUpcoming, contract.Status)
	assert.Equal(t, now, *contract.CheckInTime)
}
