package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avoronin/cashback-matrix/internal/config"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "session.yaml", cfg.Files.Session)
	assert.Equal(t, "banks.yaml", cfg.Files.Banks)
	assert.Equal(t, "aliases.yaml", cfg.Files.Aliases)
	assert.Equal(t, "02.01.2006", cfg.Export.DateFormat)
	assert.Equal(t, "или", cfg.Export.OrConnector)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 60, cfg.AI.TimeoutSeconds)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CASHBACK_LOG_LEVEL", "debug")
	t.Setenv("CASHBACK_FILES_SESSION", "other-session.yaml")
	t.Setenv("CASHBACK_EXPORT_OR_CONNECTOR", "or")

	cfg, err := config.InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "other-session.yaml", cfg.Files.Session)
	assert.Equal(t, "or", cfg.Export.OrConnector)
}

func TestInitializeConfig_GeminiKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "CASHBACK_LOG_LEVEL", "verbose"},
		{"bad log format", "CASHBACK_LOG_FORMAT", "xml"},
		{"timeout out of range", "CASHBACK_AI_TIMEOUT_SECONDS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := config.ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CASHBACK_TEST_ENV_VAR", "set")
	assert.Equal(t, "set", config.GetEnv("CASHBACK_TEST_ENV_VAR", "fallback"))
	assert.Equal(t, "fallback", config.GetEnv("CASHBACK_TEST_ENV_VAR_MISSING", "fallback"))
}
