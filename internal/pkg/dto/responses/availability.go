package responses

import "plantao-service/internal/app/models"

type SubmitAvailability struct {
	Created []models.TimeSlot `json:"created"`
	Skipped []SkippedDate     `json:"skipped"`
}

type SkippedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}
