package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tournevent/shipit/internal/config"
	"github.com/tournevent/shipit/internal/telemetry"
	"github.com/tournevent/shipit/pkg/shipit"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type app struct {
	cfg       *config.Config
	logger    *otelzap.Logger
	connector *shipit.Connector
	registry  *prometheus.Registry
	shutdown  func(context.Context) error
}

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level, format string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level, format)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}
	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version, cfg.Attributes()...)
}

func initConnector(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer, observer shipit.Observer) (*shipit.Connector, error) {
	if cfg.APIToken == "" {
		return nil, errors.New("SHIPIT_API_TOKEN is not set")
	}
	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	return shipit.New(shipit.Config{
		Token:   cfg.APIToken,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		UserAgent: fmt.Sprintf("%s/%s", cfg.ServiceName, cfg.Version),
		Logger:    logger,
		Tracer:    tracer,
		Observer:  observer,
	})
}

func setup(ctx context.Context, logFormat string) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := initLogger(cfg.LogLevel, logFormat)
	if err != nil {
		return nil, err
	}

	tracer, shutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
		shutdown = func(context.Context) error { return nil }
	}

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry)

	connector, err := initConnector(cfg, logger, tracer, metrics)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	logger.Debug("Shipit client ready",
		zap.String("base_url", connector.BaseURL()),
		zap.String("environment", cfg.Environment),
		zap.String("version", cfg.Version),
	)

	return &app{
		cfg:       cfg,
		logger:    logger,
		connector: connector,
		registry:  registry,
		shutdown:  shutdown,
	}, nil
}

// close flushes telemetry. Metrics go to the configured textfile, if any.
func (a *app) close(ctx context.Context) error {
	defer a.logger.Sync()

	var errs []error
	if a.cfg.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsTextfile, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("writing metrics: %w", err))
		}
	}
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn("Failed to shut down tracer", zap.Error(err))
	}
	return errors.Join(errs...)
}
