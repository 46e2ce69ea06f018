package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"":        zap.InfoLevel,
		"INFO":    zap.InfoLevel,
		"warn":    zap.WarnLevel,
		"warning": zap.WarnLevel,
		" error ": zap.ErrorLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNew(t *testing.T) {
	logger, err := New("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = New("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
