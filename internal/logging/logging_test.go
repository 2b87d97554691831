package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Quiet: true}, &buf)
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l = New(Options{Verbose: true, RunID: "r1"}, &buf)
	l.Debug("detail", zap.Int("n", 3))
	_ = l.Sync()
	assert.Contains(t, buf.String(), "detail")
	assert.Contains(t, buf.String(), "r1")
}

func TestFileCore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	var buf bytes.Buffer
	l := New(Options{File: path, Quiet: true, Command: "abrank-test"}, &buf)
	l.Info("to file only")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file only"`)
	assert.Contains(t, string(data), `"cmd":"abrank-test"`)
	assert.Empty(t, buf.String())
}
