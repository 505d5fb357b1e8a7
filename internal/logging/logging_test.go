package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))

	logger, err = New(Options{Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNew_WritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aocsync.log")

	logger, err := New(Options{File: path})
	require.NoError(t, err)

	logger.Info("saved input", zap.Int("year", 2022), zap.Int("day", 1))
	logger.Debug("not written")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"saved input"`)
	assert.Contains(t, string(data), `"year":2022`)
	assert.NotContains(t, string(data), "not written")
}

func TestNew_Quiet(t *testing.T) {
	logger, err := New(Options{Quiet: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))

	path := filepath.Join(t.TempDir(), "tui.log")
	logger, err = New(Options{Quiet: true, File: path})
	require.NoError(t, err)

	logger.Warn("cannot record download in ledger")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cannot record download in ledger")
}
