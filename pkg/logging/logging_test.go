package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		t.Setenv(EnvLogFile, "/tmp/custom/dotman.log")
		assert.Equal(t, "/tmp/custom/dotman.log", getLogFilePath())
	})

	t.Run("xdg state home", func(t *testing.T) {
		t.Setenv(EnvLogFile, "")
		t.Setenv("XDG_STATE_HOME", "/var/state")
		assert.Equal(t, filepath.Join("/var/state", "dotman", "dotman.log"), getLogFilePath())
	})
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "dotman.log")

	file, err := setupLogFile(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	defer func() { log.Logger = original }()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("template")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"template"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	logger := zerolog.New(&buf)
	done := LogOperationStart(logger, "apply")
	assert.Contains(t, buf.String(), `"message":"Operation started"`)

	done()
	assert.Contains(t, buf.String(), `"message":"Operation completed"`)
	assert.Contains(t, buf.String(), `"duration":`)
}

func TestSetupLoggerWritesLogFile(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	path := filepath.Join(t.TempDir(), "state", "dotman.log")
	t.Setenv(EnvLogFile, path)

	SetupLogger(1)
	GetLogger("test").Info().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
