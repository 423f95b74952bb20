package requests

type CreateProposal struct {
	SessionData     string          `json:"-"`
	DoctorID        string          `json:"doctorId,omitempty"`
	Specialty       string          `json:"specialty" validate:"required"`
	Date            string          `json:"date" validate:"required,date_only"`
	Time            string          `json:"time" validate:"required,clock"`
	DurationHours   int             `json:"duration" validate:"required,gt=0,lte=24"`
	Location        string          `json:"location" validate:"required"`
	Latitude        *float64        `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude       *float64        `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description     string          `json:"description"`
	Requirements    string          `json:"requirements"`
	Value           float64         `json:"value" validate:"gte=0"`
	HospitalProfile HospitalProfile `json:"hospitalProfile"`
}

type HospitalProfile struct {
	Description string   `json:"description"`
	Founded     string   `json:"founded"`
	Employees   int      `json:"employees" validate:"gte=0"`
	Specialties []string `json:"specialties"`
}

type ListProposals struct {
	SessionData string
	Status      string `validate:"omitempty,oneof=pending accepted rejected"`
}

type ListMatchingProposals struct {
	SessionData string
	Specialty   string `validate:"required"`
}

type ProposalByID struct {
	SessionData string
	ProposalID  string
}
