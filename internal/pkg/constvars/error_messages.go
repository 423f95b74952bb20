package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s",
	"max":       "maximum at %s",
	"eqfield":   "must match %s",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"dive":      "contains an invalid item",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_type": "must be either 'doctor' or 'hospital'",
	"clock":     "must be a time in HH:MM format",
	"date_only": "must be a date in YYYY-MM-DD format",
	"latitude":  "must be a valid latitude",
	"longitude": "must be a valid longitude",
}

// Tags whose message embeds the tag parameter
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lte":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientResetPasswordTokenExpired     = "your reset password request already expired"
	ErrClientResourceNotFound              = "the requested %s was not found"
	ErrClientTooManyRequests               = "too many requests, you are blocked temporarily"

	ErrClientInvalidTimeRange          = "start time must be before end time"
	ErrClientNoDatesSelected           = "select at least one date"
	ErrClientNoSpecialtiesSelected     = "select at least one specialty"
	ErrClientSlotConflict              = "this time slot overlaps with an existing slot on the same date"
	ErrClientProposalNotPending        = "this proposal was already answered"
	ErrClientContractInvalidTransition = "this action is not allowed for the current contract state"
	ErrClientCheckOutBeforeCheckIn     = "check-out must happen after check-in"
	ErrClientIdentityNotVerified       = "we could not verify your identity"
	ErrClientFaceNotEnrolled           = "register a reference photo before checking in"
	ErrClientLocationUnavailable       = "we could not read your location"
	ErrClientOutsideGeofence           = "you are too far from the shift location"
	ErrClientDocumentTooLarge          = "the file must be at most %d MB"
	ErrClientRequestBodyTooLarge       = "the request body must be at most %d MB"
	ErrClientDocumentInvalidType       = "the file must be a PDF, JPEG or PNG"
	ErrClientUnknownDocumentKey        = "unknown document type"
	ErrClientMandatoryDocumentsMissing = "the following documents are mandatory: %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevURLParamValidationFailed = "url parameter %s validation failed"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevPasswordsDoNotMatch      = "passwords do not match"
	ErrDevRoleTypeDoesntMatch      = "request done by user with a different user type"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingSessionData       = "session data missing from context"
	ErrDevResourceNotFound         = "%s not found"
	ErrDevTooManyRequests          = "rate limit exceeded for %s"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenExpired          = "token expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Domain messages
	ErrDevInvalidTimeRange          = "start %s is not before end %s"
	ErrDevNoDatesSelected           = "candidate date list is empty"
	ErrDevNoSpecialtiesSelected     = "specialty list is empty"
	ErrDevSlotConflict              = "slot %s %s-%s overlaps an existing slot"
	ErrDevAvailabilityLocked        = "availability of doctor %s is being modified by another request"
	ErrDevProposalNotPending        = "proposal %s is not pending"
	ErrDevContractInvalidTransition = "contract %s cannot %s from status %s attendance %s"
	ErrDevCheckOutBeforeCheckIn     = "check-out time %s is not after check-in time %s"
	ErrDevContractLocked            = "contract %s is being updated by another request"
	ErrDevIdentityScoreBelow        = "face match score %.3f below threshold %.3f"
	ErrDevFaceNotEnrolled           = "doctor %s has no reference face"
	ErrDevLocationUnavailable       = "location unavailable: %s"
	ErrDevOutsideGeofence           = "distance %.1fm exceeds radius %.1fm"
	ErrDevDocumentTooLarge          = "document size %d exceeds limit %d"
	ErrDevRequestBodyTooLarge       = "request body exceeds limit %d"
	ErrDevDocumentInvalidType       = "document content type %s not allowed"
	ErrDevUnknownDocumentKey        = "unknown document key %s"
	ErrDevMandatoryDocumentsMissing = "mandatory documents missing: %s"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocuments   = "failed when counting documents on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBTransactionFailed        = "database transaction failed"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObject             = "failed to get object from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisExpire     = "failed to EXPIRE key in redis"
	ErrDevRedisIncrement  = "failed to INCR key in redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
