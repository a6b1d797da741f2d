package telemetry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.log")
	logger, err := NewLogger(Config{FilePath: path})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test message")
	_ = logger.Sync() // syncing a console-backed core can fail on some platforms; not asserted
	assert.FileExists(t, path)
}

func TestProfilerAccumulatesTiming(t *testing.T) {
	logger, err := NewLogger(Config{})
	require.NoError(t, err)

	p := NewProfiler(logger)
	p.BeginBVHBuild()
	time.Sleep(time.Millisecond)
	p.EndBVHBuild()

	p.BeginTrace()
	time.Sleep(time.Millisecond)
	p.EndTrace()

	p.RecordRow(100)
	p.RecordRow(100)

	stats := p.Stats()
	assert.Greater(t, stats.BVHBuildTime, time.Duration(0))
	assert.Greater(t, stats.TraceTime, time.Duration(0))
	assert.Equal(t, 2, stats.RowsTraced)
	assert.Equal(t, 200, stats.PixelsTraced)
}
