package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionTimeSlots      = "timeSlots"
	MongoCollectionProposals      = "proposals"
	MongoCollectionContracts      = "contracts"
	MongoCollectionDoctorProfiles = "doctorProfiles"
	MongoCollectionFacialData     = "facialData"
)
