package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToConfiguredOutput(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf})

	log := Get()
	log.Debug().Str("screen", "chat").Msg("list loaded")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"screen":"chat"`)
	assert.Contains(t, out, `"message":"list loaded"`)
}

func TestInitOnlyFirstCallTakesEffect(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})

	log := Get()
	log.Info().Msg("hello")

	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestResetAllowsReinitialisation(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var buf bytes.Buffer
	Init(Options{Level: "error", Output: &buf})
	log := Get()
	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	Reset()
	assert.Equal(t, zerolog.Nop().GetLevel(), Get().GetLevel())

	Init(Options{Level: "info", Output: &buf})
	log = Get()
	log.Info().Msg("kept")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestGetBeforeInitDiscards(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	// Must not panic and must not touch any output.
	log := Get()
	log.Error().Msg("nowhere")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" Warning "))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
