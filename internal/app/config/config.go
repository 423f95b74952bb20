package config

import (
	"plantao-service/internal/pkg/constvars"
	"plantao-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:       utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:       utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:     utils.GetEnvString("MONGODB_DB_NAME", "plantao"),
			Username:   utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			ReplicaSet: utils.GetEnvString("MONGODB_REPLICA_SET", "rs0"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                                 utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:                           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:                  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:               utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			LoginSessionExpiredTimeInHours:           utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			ForgotPasswordTokenExpiredTimeInMinutes:  utils.GetEnvInt("APP_FORGOT_PASSWORD_TOKEN_EXPIRED_TIME_IN_MINUTES", 30),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 1),
			AvailabilityLockTTLInSeconds:             utils.GetEnvInt("APP_AVAILABILITY_LOCK_TTL_IN_SECONDS", 15),
			AuthRateLimitPerMinute:                   utils.GetEnvInt("APP_AUTH_RATE_LIMIT_PER_MINUTE", 10),
			AuthRateLimitBlockTimeInMinutes:          utils.GetEnvInt("APP_AUTH_RATE_LIMIT_BLOCK_TIME_IN_MINUTES", 5),
			ReminderCronSpec:                         utils.GetEnvString("APP_REMINDER_CRON_SPEC", "@every 15m"),
			ReminderLeadTimeInHours:                  utils.GetEnvInt("APP_REMINDER_LEAD_TIME_IN_HOURS", 24),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Mailer: AppMailer{
			EmailSender:      utils.GetEnvString("MAILER_EMAIL_SENDER", "no-reply@plantao.app"),
			ResetPasswordUrl: utils.GetEnvString("MAILER_RESET_PASSWORD_URL", "http://localhost:3000/reset-password"),
		},
		Minio: AppMinio{
			BucketName:              utils.GetEnvString("MINIO_BUCKET_NAME", "plantao"),
			DocumentMaxSizeInMB:     utils.GetEnvInt64("MINIO_DOCUMENT_MAX_SIZE_IN_MB", constvars.DocumentMaxSizeInMB),
			ProfilePhotoMaxSizeInMB: utils.GetEnvInt64("MINIO_PROFILE_PHOTO_MAX_SIZE_IN_MB", constvars.DocumentMaxSizeInMB),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue:       utils.GetEnvString("RABBITMQ_MAILER_QUEUE", "plantao.mailer"),
			NotificationQueue: utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "plantao.notifications"),
		},
		Verification: AppVerification{
			FaceMatchThreshold:     utils.GetEnvFloat("VERIFICATION_FACE_MATCH_THRESHOLD", 0.8),
			GeofenceRadiusInMeters: utils.GetEnvFloat("VERIFICATION_GEOFENCE_RADIUS_IN_METERS", 500),
		},
	}
}
