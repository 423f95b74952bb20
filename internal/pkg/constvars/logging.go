package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingDataKey               = "data"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingUserIDKey             = "user_id"
	LoggingUserTypeKey           = "user_type"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingSlotIDKey             = "slot_id"
	LoggingProposalIDKey         = "proposal_id"
	LoggingContractIDKey         = "contract_id"
	LoggingDocumentKey           = "document_key"
	LoggingObjectNameKey         = "object_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingQueueKey              = "queue"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingCreatedCountKey       = "created_count"
	LoggingSkippedCountKey       = "skipped_count"
	LoggingMatchScoreKey         = "match_score"
	LoggingDistanceMetersKey     = "distance_meters"
	LoggingErrorTypeKey          = "error_type"
)
