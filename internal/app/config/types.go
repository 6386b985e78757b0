package config

import (
	"medtrack-portal/internal/pkg/constvars"
	"time"
)

type (
	InternalConfig struct {
		App       App
		API       API
		Session   Session
		Dashboard Dashboard
		Minio     MinioBucket
		RabbitMQ  RabbitMQQueues
	}

	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                    string
		Port                   string
		Version                string
		Timezone               string
		TemplatesDir           string
		AllowedOrigins         string
		CSRFKey                string
		GoogleClientID         string
		SecureCookies          bool
		MaxRequests            int
		ShutdownTimeout        int
		RequestTimeoutInSecond int
		ProfileImageMaxSizeMB  int64
		LoginMaxAttempts       int
		LoginWindowInSecond    int
		LoginBlockInMinute     int
	}

	API struct {
		BaseUrl              string
		TimeoutInSecond      int
		MaxRequestsPerSecond float64
		Burst                int
	}

	Session struct {
		CookieName  string
		Secret      string
		TTLInHour   int
		CLIHomePath string
	}

	Dashboard struct {
		RefreshInSecond           int
		PharmacistRefreshInSecond int
	}

	MinioBucket struct {
		BucketName          string
		PresignedURLInHours int
	}

	RabbitMQQueues struct {
		ReminderQueue string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Enabled  bool
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Enabled  bool
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)

func (a App) IsProduction() bool {
	return a.Env == "production"
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSecond) * time.Second
}

// LoginWindow and LoginBlock tune the credential form limiter.
func (a App) LoginWindow() time.Duration {
	return time.Duration(a.LoginWindowInSecond) * time.Second
}

func (a App) LoginBlock() time.Duration {
	return time.Duration(a.LoginBlockInMinute) * time.Minute
}

func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLInHour) * time.Hour
}

func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutInSecond) * time.Second
}

// RefreshSeconds is the polling period for the dashboard of role. The
// pharmacist dashboard refreshes faster than the others. Non-positive
// settings fall back to the defaults.
func (d Dashboard) RefreshSeconds(role string) int {
	if role == "PHARMACIST" {
		if d.PharmacistRefreshInSecond > 0 {
			return d.PharmacistRefreshInSecond
		}
		return constvars.DefaultPharmacistDashboardRefreshInSecond
	}
	if d.RefreshInSecond > 0 {
		return d.RefreshInSecond
	}
	return constvars.DefaultDashboardRefreshInSecond
}

func (d Dashboard) RefreshInterval(role string) time.Duration {
	return time.Duration(d.RefreshSeconds(role)) * time.Second
}
