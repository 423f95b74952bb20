package models

import (
	"plantao-service/internal/pkg/constvars"
	"time"
)

type Contract struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	ProposalID    string     `json:"proposalId" bson:"proposalId"`
	DoctorID      string     `json:"doctorId" bson:"doctorId"`
	HospitalID    string     `json:"hospitalId" bson:"hospitalId"`
	Hospital      string     `json:"hospital" bson:"hospital"`
	Specialty     string     `json:"specialty" bson:"specialty"`
	Date          string     `json:"date" bson:"date"`
	Time          string     `json:"time" bson:"time"`
	DurationHours int        `json:"duration" bson:"duration"`
	Location      string     `json:"location" bson:"location"`
	Coordinates   *GeoPoint  `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Value         float64    `json:"value" bson:"value"`
	Status        string     `json:"status" bson:"status"`
	Attendance    string     `json:"attendance" bson:"attendance"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty" bson:"checkInTime,omitempty"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty" bson:"checkOutTime,omitempty"`
	CanceledAt    *time.Time `json:"canceledAt,omitempty" bson:"canceledAt,omitempty"`
	RemindedAt    *time.Time `json:"remindedAt,omitempty" bson:"remindedAt,omitempty"`
	TimeModel     `bson:",inline"`
}

func (c *Contract) IsUpcoming() bool {
	return c.Status == constvars.ContractStatusUpcoming
}

func (c *Contract) IsCompleted() bool {
	return c.Status == constvars.ContractStatusCompleted
}

// ShiftStart combines Date and Time in loc.
func (c *Contract) ShiftStart(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout+" "+constvars.ClockLayout, c.Date+" "+c.Time, loc)
}
