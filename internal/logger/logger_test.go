package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("dbg %d", 1)
	l.Info("info")
	l.Warn("warn")
	l.Error("err %s", "boom")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "dbg 1"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "error", Message: "err boom"}, l.Messages[3])

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("fatal"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoop(t *testing.T) {
	l := Noop()

	// Must not panic and must not record anything anywhere.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("through default")
	assert.True(t, buf.HasLevel("info"))
}
