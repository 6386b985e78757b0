package config

import (
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
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
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                    utils.GetEnvString("APP_ENV", "development"),
			Port:                   utils.GetEnvString("APP_PORT", ":3000"),
			Version:                utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:               utils.GetEnvString("APP_TIMEZONE", "UTC"),
			TemplatesDir:           utils.GetEnvString("APP_TEMPLATES_DIR", ""),
			AllowedOrigins:         utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:3000"),
			CSRFKey:                utils.GetEnvString("APP_CSRF_KEY", "medtrack-csrf-key-change-me-32by"),
			GoogleClientID:         utils.GetEnvString("GOOGLE_CLIENT_ID", ""),
			SecureCookies:          utils.GetEnvBool("APP_SECURE_COOKIES", false),
			MaxRequests:            utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:        utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSecond: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECOND", 10),
			ProfileImageMaxSizeMB:  utils.GetEnvInt64("APP_PROFILE_IMAGE_MAX_SIZE_IN_MB", 2),
			LoginMaxAttempts:       utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 5),
			LoginWindowInSecond:    utils.GetEnvInt("APP_LOGIN_WINDOW_IN_SECOND", 60),
			LoginBlockInMinute:     utils.GetEnvInt("APP_LOGIN_BLOCK_IN_MINUTE", 15),
		},
		API: API{
			BaseUrl:              utils.GetEnvString("MEDTRACK_API_BASE_URL", "http://localhost:8080/api"),
			TimeoutInSecond:      utils.GetEnvInt("MEDTRACK_API_TIMEOUT_IN_SECOND", 15),
			MaxRequestsPerSecond: utils.GetEnvFloat("MEDTRACK_API_MAX_REQUESTS_PER_SECOND", 50),
			Burst:                utils.GetEnvInt("MEDTRACK_API_BURST", 20),
		},
		Session: Session{
			CookieName:  utils.GetEnvString("SESSION_COOKIE_NAME", "medtrack_session"),
			Secret:      utils.GetEnvString("SESSION_SECRET", "anyjwt"),
			TTLInHour:   utils.GetEnvInt("SESSION_TTL_IN_HOUR", 24),
			CLIHomePath: utils.GetEnvString("MEDTRACK_HOME", ""),
		},
		Dashboard: Dashboard{
			RefreshInSecond:           utils.GetEnvInt("DASHBOARD_REFRESH_IN_SECOND", constvars.DefaultDashboardRefreshInSecond),
			PharmacistRefreshInSecond: utils.GetEnvInt("DASHBOARD_PHARMACIST_REFRESH_IN_SECOND", constvars.DefaultPharmacistDashboardRefreshInSecond),
		},
		Minio: MinioBucket{
			BucketName:          utils.GetEnvString("MINIO_BUCKET_NAME", "medtrack-profile-images"),
			PresignedURLInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_IN_HOURS", 168),
		},
		RabbitMQ: RabbitMQQueues{
			ReminderQueue: utils.GetEnvString("RABBITMQ_REMINDER_QUEUE", "medtrack.reminders"),
		},
	}
}
