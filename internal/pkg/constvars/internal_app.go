package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PLNTAO_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// User types. A session carries exactly one of these.
const (
	UserTypeDoctor   = "doctor"
	UserTypeHospital = "hospital"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// Redis key formats
const (
	RedisKeySessionFormat          = "session:%s"
	RedisKeyResetPasswordFormat    = "reset_password:%s"
	RedisKeyAvailabilityLockFormat = "availability:lock:%s"
	RedisKeyContractLockFormat     = "contract:lock:%s"
	RedisKeyRemindersLeader        = "reminders:leader"
)

const (
	ForgotPasswordLimiterGroup        = "forgot-password"
	ForgotPasswordMaxRequestsPerEmail = 3
	ForgotPasswordLimiterWindowHours  = 1
)
