package prototype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestNewLibrary_LogsOnce verifies the diagnostic line is emitted once the
// expensive step completes.
func TestNewLibrary_LogsOnce(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	NewLibrary("City", WithDelay(0), WithLogger(zap.New(core)))

	entries := logs.FilterMessage(expensiveMessage).All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, BookCount, entries[0].ContextMap()["books"])
}

// TestLibraryConfig_Defaults verifies the production defaults.
func TestLibraryConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newLibraryConfig()

	assert.Equal(t, DefaultExpensiveDelay, cfg.delay)
	assert.Equal(t, 3*time.Second, cfg.delay)
	assert.NotNil(t, cfg.logger)
}

// TestLibraryConfig_Overrides verifies option order and ignored values.
func TestLibraryConfig_Overrides(t *testing.T) {
	t.Parallel()

	logger := zap.NewNop()

	cfg := newLibraryConfig(WithDelay(time.Second), WithDelay(-time.Second), WithLogger(logger), WithLogger(nil), nil)

	assert.Zero(t, cfg.delay)
	assert.Same(t, logger, cfg.logger)
}
