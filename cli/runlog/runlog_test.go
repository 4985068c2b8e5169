package runlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerBase(t *testing.T) {
	tmpDir := t.TempDir()
	fileName := filepath.Join(tmpDir, "test_log")

	logger := NewLogger(LoggerOpts{Filename: fileName})
	console := memory.New()
	apexLogger := &log.Logger{Handler: logger.Tee(console), Level: log.InfoLevel}

	apexLogger.Info("Test msg 1")
	assert.FileExists(t, fileName)
	require.Len(t, console.Entries, 1)
	assert.Equal(t, "Test msg 1", console.Entries[0].Message)

	require.NoError(t, os.Rename(fileName, fileName+".old"))
	apexLogger.Warn("Test msg 2")
	require.NoError(t, logger.Rotate())
	assert.FileExists(t, fileName)

	apexLogger.Error("Test msg 3")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(fileName + ".old")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test msg 1")
	assert.Contains(t, string(content), "Test msg 2")

	content, err = os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test msg 3")
	assert.Len(t, console.Entries, 3)
}

func TestLoggerDefaults(t *testing.T) {
	logger := NewLogger(LoggerOpts{Filename: filepath.Join(t.TempDir(), "log")})
	opts := logger.GetOpts()
	assert.Equal(t, 10, opts.MaxSize)
	assert.Equal(t, 3, opts.MaxBackups)
	assert.NoError(t, logger.Close())
}

func TestSetup(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "launchkit.log")
	restore, err := Setup(fileName)
	require.NoError(t, err)
	log.Info("scaffolding started")
	require.NoError(t, restore())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "scaffolding started")
}

func TestSetupNoFile(t *testing.T) {
	restore, err := Setup("")
	require.NoError(t, err)
	assert.NoError(t, restore())
}
