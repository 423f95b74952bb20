package models

import (
	"plantao-service/internal/pkg/constvars"
	"time"
)

type Proposal struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	DoctorID        string          `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	HospitalID      string          `json:"hospitalId" bson:"hospitalId"`
	Hospital        string          `json:"hospital" bson:"hospital"`
	Specialty       string          `json:"specialty" bson:"specialty"`
	Date            string          `json:"date" bson:"date"`
	Time            string          `json:"time" bson:"time"`
	DurationHours   int             `json:"duration" bson:"duration"`
	Location        string          `json:"location" bson:"location"`
	Coordinates     *GeoPoint       `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Description     string          `json:"description" bson:"description"`
	Requirements    string          `json:"requirements" bson:"requirements"`
	Value           float64         `json:"value" bson:"value"`
	Status          string          `json:"status" bson:"status"`
	HospitalProfile HospitalProfile `json:"hospitalProfile" bson:"hospitalProfile"`
	RespondedAt     *time.Time      `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
	TimeModel       `bson:",inline"`
}

type HospitalProfile struct {
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Founded     string   `json:"founded" bson:"founded"`
	Employees   int      `json:"employees" bson:"employees"`
	Specialties []string `json:"specialties" bson:"specialties"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (p *Proposal) IsPending() bool {
	return p.Status == constvars.ProposalStatusPending
}

// ToContract copies the shift fields into a new upcoming contract for doctorID.
func (p *Proposal) ToContract(doctorID string, now time.Time) *Contract {
	contract := &Contract{
		ProposalID:    p.ID,
		DoctorID:      doctorID,
		HospitalID:    p.HospitalID,
		Hospital:      p.Hospital,
		Specialty:     p.Specialty,
		Date:          p.Date,
		Time:          p.Time,
		DurationHours: p.DurationHours,
		Location:      p.Location,
		Value:         p.Value,
		Status:        constvars.ContractStatusUpcoming,
		Attendance:    constvars.AttendanceAwaitingCheckIn,
	}
	if p.Coordinates != nil {
		point := *p.Coordinates
		contract.Coordinates = &point
	}
	contract.CreatedAt = now
	contract.UpdatedAt = now
	return contract
}
