package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipit/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Set-but-empty variables bypass envconfig defaults, so unset them.
	for _, key := range []string{
		"LOG_LEVEL", "SHIPIT_API_TOKEN", "SHIPIT_ENVIRONMENT", "SHIPIT_BASE_URL",
		"SHIPIT_TEST_URL", "SHIPIT_TIMEOUT", "OTEL_ENABLED", "SERVICE_NAME",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.OTELEnabled)
	assert.Equal(t, "shipit-cli", cfg.ServiceName)

	base, err := cfg.ResolveBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://apitest.shipit.ax", base)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SHIPIT_API_TOKEN", "secret")
	t.Setenv("SHIPIT_ENVIRONMENT", "production")
	t.Setenv("SHIPIT_TIMEOUT", "5s")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.OTELEnabled)

	base, err := cfg.ResolveBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://api.shipit.fi", base)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("SHIPIT_TIMEOUT", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestResolveBaseURL(t *testing.T) {
	base := config.Config{
		ProductionURL: "https://prod",
		LiveURL:       "https://live",
		TestURL:       "https://test",
	}

	tests := []struct {
		name     string
		env      string
		override string
		want     string
		wantErr  bool
	}{
		{name: "production", env: "production", want: "https://prod"},
		{name: "live", env: "live", want: "https://live"},
		{name: "test", env: "test", want: "https://test"},
		{name: "empty", env: "", want: "https://test"},
		{name: "override wins", env: "production", override: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "unknown", env: "staging", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Environment = tt.env
			cfg.BaseURL = tt.override

			got, err := cfg.ResolveBaseURL()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributes(t *testing.T) {
	cfg := config.Config{ServiceName: "shipit-cli", Version: "1.2.3", Environment: "live"}

	attrs := cfg.Attributes()
	values := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		values[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "shipit-cli", values["service.name"])
	assert.Equal(t, "1.2.3", values["service.version"])
	assert.Equal(t, "live", values["shipit.environment"])
	assert.Equal(t, "false", values["shipit.base_url_override"])
}
