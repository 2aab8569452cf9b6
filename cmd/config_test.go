package cmd_test

import (
	"testing"

	"booksamples/cmd"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "samples",
		DBPassword: "secret",
		DBName:     "booksamples",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=samples password=secret dbname=booksamples sslmode=disable",
		cfg.PostgresDSN())

	cfg.DBSslMode = "require"
	assert.Contains(t, cfg.PostgresDSN(), "sslmode=require")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := cmd.NewLogger(tt.level)

			assert.Equal(t, tt.want, logger.GetLevel())
			assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
		})
	}
}
