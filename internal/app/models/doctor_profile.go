package models

import "time"

// DoctorProfile is keyed by the doctor's user id.
type DoctorProfile struct {
	ID                   string                 `json:"id" bson:"_id"`
	Personal             PersonalInfo           `json:"personal" bson:"personal"`
	Professional         ProfessionalInfo       `json:"professional" bson:"professional"`
	Financial            FinancialInfo          `json:"financial" bson:"financial"`
	Documents            map[string]DocumentRef `json:"documents" bson:"documents"`
	DocumentsSubmittedAt *time.Time             `json:"documentsSubmittedAt,omitempty" bson:"documentsSubmittedAt,omitempty"`
	FaceReference        string                 `json:"-" bson:"faceReference,omitempty"`
	TimeModel            `bson:",inline"`
}

type PersonalInfo struct {
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
	CPF       string `json:"cpf" bson:"cpf"`
	BirthDate string `json:"birthdate" bson:"birthdate"`
	Gender    string `json:"gender" bson:"gender"`
	Address   string `json:"address" bson:"address"`

	// PhotoObjectName is persisted, PhotoURL is a presigned link filled on read.
	PhotoObjectName string `json:"-" bson:"photoObjectName,omitempty"`
	PhotoURL        string `json:"photoURL,omitempty" bson:"-"`
}

type ProfessionalInfo struct {
	CRM            string   `json:"crm" bson:"crm"`
	Graduation     string   `json:"graduation" bson:"graduation"`
	GraduationYear string   `json:"graduationYear" bson:"graduationYear"`
	Specialties    []string `json:"specialties" bson:"specialties"`
	ServiceType    string   `json:"serviceType" bson:"serviceType"`
	Experience     string   `json:"experience" bson:"experience"`
	Bio            string   `json:"bio" bson:"bio"`
}

type FinancialInfo struct {
	HourlyRate  float64 `json:"hourlyRate" bson:"hourlyRate"`
	Bank        string  `json:"bank" bson:"bank"`
	Agency      string  `json:"agency" bson:"agency"`
	Account     string  `json:"account" bson:"account"`
	AccountType string  `json:"accountType" bson:"accountType"`
	Pix         string  `json:"pix" bson:"pix"`
}

type DocumentRef struct {
	ObjectName  string    `json:"objectName" bson:"objectName"`
	FileName    string    `json:"fileName" bson:"fileName"`
	ContentType string    `json:"contentType" bson:"contentType"`
	Size        int64     `json:"size" bson:"size"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

// FacialData archives every frame a doctor submitted, keyed by the doctor's user id.
type FacialData struct {
	ID          string    `json:"id" bson:"_id"`
	ObjectNames []string  `json:"objectNames" bson:"objectNames"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
