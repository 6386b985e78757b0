package logger

import (
	"io"
	"medtrack-portal/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the human readable logger used by the CLI and by
// the portal's boot sequence.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, output io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch internalConfig.App.Env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
	return logger
}
