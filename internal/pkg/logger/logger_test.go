package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureLevelFiltering(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Debug().Msg("debug message")
	Info().Msg("info message")
	assert.Empty(t, buf.String())

	Warn().Msg("warn message")
	Error().Msg("error message")

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "error message")
	assert.NotContains(t, out, "info message")
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: LogLevel("verbose"), Output: &buf})

	Debug().Msg("debug message")
	Info().Msg("info message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
}
