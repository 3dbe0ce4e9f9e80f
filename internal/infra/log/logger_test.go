package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"gatekeeper/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.ServiceName = "gatekeeper"
	cfg.Env.Log.Level = "info"

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "gatekeeper", record["service"])
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
