package requests

type SubmitAvailability struct {
	SessionData string   `json:"-"`
	Dates       []string `json:"dates" validate:"dive,date_only"`
	StartTime   string   `json:"startTime" validate:"required,clock"`
	EndTime     string   `json:"endTime" validate:"required,clock"`
	Specialties []string `json:"specialties" validate:"dive,required"`
}

type UpdateSlot struct {
	SessionData string   `json:"-"`
	SlotID      string   `json:"-"`
	StartTime   string   `json:"startTime" validate:"required,clock"`
	EndTime     string   `json:"endTime" validate:"required,clock"`
	Specialties []string `json:"specialties" validate:"dive,required"`
}

type SlotByID struct {
	SessionData string
	SlotID      string
}
