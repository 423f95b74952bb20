package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	JWT          AppJWT          `mapstructure:"jwt"`
	Mailer       AppMailer       `mapstructure:"mailer"`
	Minio        AppMinio        `mapstructure:"minio"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
	Verification AppVerification `mapstructure:"verification"`
}

type App struct {
	Env                                      string `mapstructure:"env"`
	Port                                     string `mapstructure:"port"`
	Version                                  string `mapstructure:"version"`
	Address                                  string `mapstructure:"address"`
	Timezone                                 string `mapstructure:"timezone"`
	EndpointPrefix                           string `mapstructure:"endpoint_prefix"`
	MaxRequests                              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds                 int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds                  int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte               int    `mapstructure:"request_body_limit_in_megabyte"`
	LoginSessionExpiredTimeInHours           int    `mapstructure:"login_session_expired_time_in_hours"`
	ForgotPasswordTokenExpiredTimeInMinutes  int    `mapstructure:"forgot_password_token_expired_time_in_minutes"`
	MinioPreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"minio_pre_signed_url_object_expiry_time_in_hours"`
	AvailabilityLockTTLInSeconds             int    `mapstructure:"availability_lock_ttl_in_seconds"`
	AuthRateLimitPerMinute                   int    `mapstructure:"auth_rate_limit_per_minute"`
	AuthRateLimitBlockTimeInMinutes          int    `mapstructure:"auth_rate_limit_block_time_in_minutes"`
	// ReminderCronSpec schedules the shift reminder worker. Empty disables it.
	ReminderCronSpec string `mapstructure:"reminder_cron_spec"`
	// ReminderLeadTimeInHours is how far ahead a shift must start to get a reminder.
	ReminderLeadTimeInHours int `mapstructure:"reminder_lead_time_in_hours"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppMailer struct {
	EmailSender      string `mapstructure:"email_sender"`
	ResetPasswordUrl string `mapstructure:"reset_password_url"`
}

type AppMinio struct {
	BucketName              string `mapstructure:"bucket_name"`
	DocumentMaxSizeInMB     int64  `mapstructure:"document_max_size_in_mb"`
	ProfilePhotoMaxSizeInMB int64  `mapstructure:"profile_photo_max_size_in_mb"`
}

type AppRabbitMQ struct {
	MailerQueue       string `mapstructure:"mailer_queue"`
	NotificationQueue string `mapstructure:"notification_queue"`
}

type AppVerification struct {
	// FaceMatchThreshold is the minimum similarity score accepted, in [0,1].
	FaceMatchThreshold float64 `mapstructure:"face_match_threshold"`
	// GeofenceRadiusInMeters is the maximum distance from the shift location.
	GeofenceRadiusInMeters float64 `mapstructure:"geofence_radius_in_meters"`
}
