package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("info", "json", &buf)
	require.NoError(t, err)

	logger.Info("execution completed", zap.String("request_id", "req-1"), zap.Bool("degraded", true))
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "execution completed", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, true, line["degraded"])
	assert.Equal(t, "info", line["level"])
}

func TestNewDefaultsToWarnConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("", "", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("execution failed", zap.String("stage", "submitting"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "execution failed")
	assert.Contains(t, out, `"stage": "submitting"`)
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	t.Parallel()

	_, err := New("chatty", "console", &bytes.Buffer{})
	assert.ErrorContains(t, err, "parse log level")

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, `unsupported log format "xml"`)
}
