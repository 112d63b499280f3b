package tracing_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/appclacks/scorecard/internal/tracing"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	shutdown, err := tracing.Setup(context.Background(), slog.Default(), tracing.Configuration{})
	assert.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	_, err = tracing.Setup(context.Background(), slog.Default(), tracing.Configuration{Enabled: true})
	assert.Error(t, err)

	assert.Equal(t, "scorecard", tracing.Configuration{}.Service())
}
