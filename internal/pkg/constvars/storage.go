package constvars

const (
	StoragePrefixProfilePhotos = "profilePhotos"
	StoragePrefixDocuments     = "documents"
	StoragePrefixFacialData    = "facialData"
)

const (
	DocumentMaxSizeInMB = 5
)

// Document keys accepted by the document bundle.
const (
	DocumentRGFile                = "rgFile"
	DocumentCPFFile               = "cpfFile"
	DocumentPhoto                 = "photo"
	DocumentProofOfResidence      = "proofOfResidence"
	DocumentCRMFile               = "crmFile"
	DocumentCurriculum            = "curriculum"
	DocumentCriminalRecord        = "criminalRecord"
	DocumentEthicalRecord         = "ethicalRecord"
	DocumentDebtRecord            = "debtRecord"
	DocumentGraduationCertificate = "graduationCertificate"
	DocumentRQEFile               = "rqeFile"
	DocumentPostGradCertificate   = "postGradCertificate"
	DocumentSpecialistTitle       = "specialistTitle"
	DocumentRecommendationLetter  = "recommendationLetter"
)

var MandatoryDocuments = []string{
	DocumentRGFile,
	DocumentCPFFile,
	DocumentPhoto,
	DocumentProofOfResidence,
	DocumentCRMFile,
	DocumentCurriculum,
	DocumentCriminalRecord,
	DocumentEthicalRecord,
	DocumentDebtRecord,
	DocumentGraduationCertificate,
}

var OptionalDocuments = []string{
	DocumentRQEFile,
	DocumentPostGradCertificate,
	DocumentSpecialistTitle,
	DocumentRecommendationLetter,
}

var AllowedDocumentContentTypes = map[string]bool{
	MIMEApplicationPDF: true,
	MIMEImageJPEG:      true,
	MIMEImagePNG:       true,
}
