package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"", FormatJSON, FormatConsole} {
		logger, err := New(Settings{Level: "info", Format: format}, false)
		require.NoError(t, err, "format %q", format)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	logger, err := New(Settings{Level: "error"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(Settings{Level: "info", Format: "xml"}, false)
	assert.Error(t, err)
}
