package logger

import (
	"bytes"
	"medtrack-portal/internal/app/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseZapLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseZapLevel("debug"))
	assert.Equal(t, zap.ErrorLevel, parseZapLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseZapLevel("verbose"), "unknown levels fall back to info")
}

func TestNewLogrusLogger(t *testing.T) {
	var output bytes.Buffer
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "production"}}

	logger := NewLogrusLogger(driverConfig, internalConfig, &output)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.NotContains(t, output.String(), "hidden")
	assert.Contains(t, output.String(), `"msg":"shown"`)
}
