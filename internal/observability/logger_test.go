package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/mouse-away/internal/config"
)

func TestGetLogger_BeforeInitialize(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestInitialize_Console(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "console", ServiceName: "mouse-away"}, zapcore.AddSync(&buf))

	GetLogger().Debug("engine activated", zap.Float64("radius", 140))
	require.NoError(t, GetLogger().Sync())

	out := buf.String()
	assert.Contains(t, out, "mouse-away.")
	assert.Contains(t, out, "engine activated")
	assert.Contains(t, out, `"radius": 140`)
}

func TestInitialize_LevelAndOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&first))
	Initialize(config.LoggerConfig{Level: "debug", Format: "json"}, zapcore.AddSync(&second))

	GetLogger().Info("filtered")
	GetLogger().Warn("kept")

	assert.NotContains(t, first.String(), "filtered")
	assert.Contains(t, first.String(), "kept")
	assert.Empty(t, second.String(), "only the first Initialize takes effect")
}

func TestInitialize_FileOnly(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "mouseaway.log")
	Initialize(config.LoggerConfig{Level: "info", LogFile: path, MaxSize: 1}, nil)

	GetLogger().Info("to file", zap.String("host", "terminal"))
	require.NoError(t, GetLogger().Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "to file", entry["msg"])
	assert.Equal(t, "terminal", entry["host"])
}
