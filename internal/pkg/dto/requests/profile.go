package requests

import "io"

type UpdatePersonalInfo struct {
	SessionData string `json:"-"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	CPF         string `json:"cpf" validate:"omitempty,numeric,len=11"`
	BirthDate   string `json:"birthdate" validate:"omitempty,date_only"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
}

type UpdateProfessionalInfo struct {
	SessionData    string   `json:"-"`
	CRM            string   `json:"crm" validate:"required"`
	Graduation     string   `json:"graduation"`
	GraduationYear string   `json:"graduationYear" validate:"omitempty,numeric,len=4"`
	Specialties    []string `json:"specialties" validate:"dive,required"`
	ServiceType    string   `json:"serviceType"`
	Experience     string   `json:"experience"`
	Bio            string   `json:"bio" validate:"max=2000"`
}

type UpdateFinancialInfo struct {
	SessionData string  `json:"-"`
	HourlyRate  float64 `json:"hourlyRate" validate:"gte=0"`
	Bank        string  `json:"bank"`
	Agency      string  `json:"agency"`
	Account     string  `json:"account"`
	AccountType string  `json:"accountType"`
	Pix         string  `json:"pix"`
}

// UploadFile is filled from a multipart form part.
type UploadFile struct {
	SessionData string
	DocumentKey string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

type EnrollFace struct {
	SessionData string `json:"-"`
	Frame       string `json:"frame" validate:"required"`
}
