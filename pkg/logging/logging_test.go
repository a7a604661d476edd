package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogFilePath(t *testing.T) {
	got := filepath.ToSlash(getLogFilePath())
	assert.True(t, filepath.IsAbs(getLogFilePath()), "log path should be absolute: %s", got)
	assert.Contains(t, got, "assetcp/assetcp.log")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	logger := GetLogger("copier")
	logger.Info().Msg("copying")

	assert.Contains(t, buf.String(), `"component":"copier"`)
	assert.Contains(t, buf.String(), "copying")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	done := LogOperationStart(logger, "copy-bulk")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "copy-bulk")
	assert.Contains(t, out, "duration")
}
