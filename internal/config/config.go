package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the command line client.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Shipit API
	APIToken      string        `envconfig:"SHIPIT_API_TOKEN"`
	Environment   string        `envconfig:"SHIPIT_ENVIRONMENT" default:"test"`
	BaseURL       string        `envconfig:"SHIPIT_BASE_URL"`
	ProductionURL string        `envconfig:"SHIPIT_PRODUCTION_URL" default:"https://api.shipit.fi"`
	LiveURL       string        `envconfig:"SHIPIT_LIVE_URL" default:"https://api.shipit.ax"`
	TestURL       string        `envconfig:"SHIPIT_TEST_URL" default:"https://apitest.shipit.ax"`
	Timeout       time.Duration `envconfig:"SHIPIT_TIMEOUT" default:"30s"`

	// Metrics are written in the Prometheus text format when set.
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"shipit-cli"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// ResolveBaseURL returns the API host: the explicit override if set,
// otherwise the configured host of the environment.
func (c *Config) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	switch c.Environment {
	case "production":
		return c.ProductionURL, nil
	case "live":
		return c.LiveURL, nil
	case "test", "":
		return c.TestURL, nil
	}
	return "", fmt.Errorf("unknown SHIPIT_ENVIRONMENT %q", c.Environment)
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("shipit.environment", c.Environment),
		attribute.Bool("shipit.base_url_override", c.BaseURL != ""),
	}
}
