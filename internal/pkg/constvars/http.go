package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
	MIMEImageJPEG       = "image/jpeg"
	MIMEImagePNG        = "image/png"
	MIMEOctetStream     = "application/octet-stream"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusConflict              = 409
	StatusGone                  = 410
	StatusRequestEntityTooLarge = 413
	StatusUnsupportedMediaType  = 415
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-Id"
	HeaderAccept        = "Accept"
	HeaderCSRFToken     = "X-CSRF-Token"
	HeaderLink          = "Link"
)

const (
	BearerPrefix = "Bearer "
)

const (
	URLParamSlotID      = "slotID"
	URLParamProposalID  = "proposalID"
	URLParamContractID  = "contractID"
	URLParamDocumentKey = "key"

	URLQueryParamStatus    = "status"
	URLQueryParamSpecialty = "specialty"

	FormFieldFile = "file"
)

// MultipartMaxMemory bounds the in-memory part of a parsed upload.
const MultipartMaxMemory = 8 << 20
