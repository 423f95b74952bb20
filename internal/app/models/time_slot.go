package models

// TimeSlot is a doctor's declared availability on one calendar day.
// Date is YYYY-MM-DD, StartTime and EndTime are zero-padded HH:MM.
type TimeSlot struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	DoctorID    string   `json:"doctorId" bson:"doctorId"`
	Date        string   `json:"date" bson:"date"`
	StartTime   string   `json:"startTime" bson:"startTime"`
	EndTime     string   `json:"endTime" bson:"endTime"`
	Specialties []string `json:"specialties" bson:"specialties"`
	TimeModel   `bson:",inline"`
}
