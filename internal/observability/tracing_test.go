package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitTracing_None(t *testing.T) {
	shutdown, err := InitTracing("os-project", "none")
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "schedule.test", attribute.Int("processes", 3))
	assert.NotNil(t, ctx)
	assert.False(t, span.IsRecording())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_Stdout(t *testing.T) {
	shutdown, err := InitTracing("os-project", "stdout")
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = InitTracing("os-project", "none") })

	_, span := StartSpan(context.Background(), "bankers.safety")
	assert.True(t, span.IsRecording())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_UnknownExporter(t *testing.T) {
	shutdown, err := InitTracing("os-project", "jeager")
	assert.Error(t, err)
	assert.Nil(t, shutdown)
}
