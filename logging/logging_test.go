package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	saved := Logger.GetLevel()
	t.Cleanup(func() { Logger.SetLevel(saved) })

	require.NoError(t, Setup("debug"))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	require.NoError(t, Setup("warn"))
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())

	err := Setup("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"loud"`)
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
}

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Info("roll started", "direction", 1)
	assert.Contains(t, buf.String(), "molasses-mike")
	assert.Contains(t, buf.String(), "roll started")
	assert.Contains(t, buf.String(), "direction=1")
}
