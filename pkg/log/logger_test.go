package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("test")
	logger.Debugf("hidden %d", 1)
	logger.Noticef("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "[test]")

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("visible %d", 3)
	assert.Contains(t, buf.String(), "visible 3")

	buf.Reset()
	SetLevel(Error)
	logger.Warningf("dropped")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"":        Notice,
		"warn":    Warning,
		"warning": Warning,
		" error ": Error,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
