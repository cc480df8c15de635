package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(Config{Level: "info"}, &buf)

	lg.Info().Str("provider", "coinmarketcap:nibbles:v1").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "nibbles-price", entry["service"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			lg := NewWithWriter(Config{Level: tt.level}, &bytes.Buffer{})
			assert.Equal(t, tt.want, lg.GetLevel())
		})
	}
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(Config{Level: "error"}, &buf)

	lg.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	lg.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(Config{Level: "info", Pretty: true}, &buf)

	lg.Info().Msg("pretty output")

	out := buf.String()
	assert.Contains(t, out, "pretty output")
	assert.False(t, strings.HasPrefix(out, "{"), "pretty output should not be JSON")
}

func TestNewWithWriter_LeavesGlobalTimeFormat(t *testing.T) {
	before := zerolog.TimeFieldFormat

	NewWithWriter(Config{Level: "info", TimeFormat: time.Kitchen}, &bytes.Buffer{})

	assert.Equal(t, before, zerolog.TimeFieldFormat)
}

func TestNewWithWriter_PrettyUsesTimeFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(Config{Level: "info", Pretty: true, TimeFormat: "2006/01/02"}, &buf)

	lg.Info().Msg("dated")

	assert.Regexp(t, `\d{4}/\d{2}/\d{2}`, buf.String())
}
