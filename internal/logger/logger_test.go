package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/config"
)

func TestSetupWriter_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "production", LogLevel: slog.LevelInfo}

	log := WithSessionID(SetupWriter(cfg, &buf), "abc-123")
	WithError(log, errors.New("boom")).Info("Game saved", "file", "kevin.json")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Game saved", entry["msg"])
	assert.Equal(t, "abc-123", entry["session_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "kevin.json", entry["file"])
}

func TestSetupWriter_DevelopmentIsTextAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "development", LogLevel: slog.LevelWarn}

	log := SetupWriter(cfg, &buf)
	log.Info("hidden")
	log.Warn("shown", "location", "Cave")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "msg=shown"))
	assert.Contains(t, out, "location=Cave")
}
