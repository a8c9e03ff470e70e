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

	"trellis/internal/config"
)

func TestInitialize_Console(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "trellis",
		Colors:      config.ColorConfig{Info: "green"},
	}, zapcore.AddSync(&buf))

	GetLogger().Info("frame rendered", zap.Int("nodes", 3))
	Sync()

	out := buf.String()
	assert.Contains(t, out, "frame rendered")
	assert.Contains(t, out, colorGreen+"INFO"+colorReset)
	assert.Contains(t, out, "trellis.")
	assert.Contains(t, out, `"nodes": 3`)
}

func TestInitialize_LevelColors(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{
		Level:  "debug",
		Format: "console",
		Colors: config.ColorConfig{Debug: "chartreuse", Warn: "yellow", Error: "red"},
	}, zapcore.AddSync(&buf))

	logger := GetLogger()
	logger.Debug("measuring text")
	logger.Warn("unknown style key")
	logger.Error("loading project failed")
	Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "\tDEBUG\t", "unknown color names leave the level plain")
	assert.Contains(t, buf.String(), colorYellow+"WARN"+colorReset)
	assert.Contains(t, buf.String(), colorRed+"ERROR"+colorReset)
}

func TestInitialize_JSONAndLevel(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(config.LoggerConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))

	logger := GetLogger()
	logger.Info("dropped")
	logger.Warn("unknown style key", zap.String("key", "colour"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "unknown style key", entry["msg"])
	assert.Equal(t, "colour", entry["key"])
}

func TestInitialize_OnlyOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	var first, second bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&first))
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&second))

	GetLogger().Info("hello")
	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestInitialize_LogFile(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "trellis.log")
	var console bytes.Buffer
	Initialize(config.LoggerConfig{Level: "info", Format: "console", LogFile: path, MaxSize: 1}, zapcore.AddSync(&console))

	GetLogger().Error("template not found", zap.String("path", "missing.html"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"template not found"`)
}

func TestGetLogger_BeforeInitialize(t *testing.T) {
	ResetForTest()
	logger := GetLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel), "fallback logger should be a no-op")
}
