package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipit/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitTracer(t *testing.T) {
	ctx := context.Background()

	tracer, shutdown, err := telemetry.InitTracer(ctx, "localhost:4318", "shipit-cli", "test",
		attribute.String("shipit.environment", "test"))
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(ctx, "shipit.GetCurrentUser")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	// Nothing listens on the endpoint; shutdown must still return.
	shutdownCtx, cancel := context.WithCancel(ctx)
	cancel()
	_ = shutdown(shutdownCtx)
}
