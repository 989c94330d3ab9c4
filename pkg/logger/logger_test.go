package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields"`
}

func lastEntry(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var e logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &e))
	return e
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, LevelError, ParseLevel("Error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.Info("student enrolled", Email("s1@example.com"), Grade(95))

	e := lastEntry(t, &buf)
	assert.Equal(t, "INFO", e.Level)
	assert.Equal(t, "student enrolled", e.Message)
	assert.Equal(t, "s1@example.com", e.Fields["email"])
	assert.Equal(t, float64(95), e.Fields["grade"])
	assert.NotEmpty(t, e.Timestamp)
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("visible")

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo).With(String("component", "audit"))

	log.Info("domain event", String("event_type", "course.created"))

	e := lastEntry(t, &buf)
	assert.Equal(t, "audit", e.Fields["component"])
	assert.Equal(t, "course.created", e.Fields["event_type"])
}

func TestErrField(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelError)

	log.Error("operation failed", Err(errors.New("boom")))

	e := lastEntry(t, &buf)
	assert.Equal(t, "boom", e.Fields["error"])
}
