package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_StartStopTags(t *testing.T) {
	tm := NewTimer(3)
	assert.False(t, tm.Running())

	tm.Start()
	first := tm.Tag()
	applied, expired := tm.Tick(first)
	assert.True(t, applied)
	assert.False(t, expired)
	assert.Equal(t, 2, tm.Remaining())

	tm.Stop()
	applied, _ = tm.Tick(first)
	assert.False(t, applied, "tick after stop")
	assert.NotEqual(t, first, tm.Tag())

	tm.Start()
	assert.Equal(t, 3, tm.Remaining())
	applied, _ = tm.Tick(first)
	assert.False(t, applied, "tick from an earlier run")
}

func TestTimer_Expiry(t *testing.T) {
	tm := NewTimer(2)
	tm.Start()
	tag := tm.Tag()

	_, expired := tm.Tick(tag)
	assert.False(t, expired)
	applied, expired := tm.Tick(tag)
	assert.True(t, applied)
	assert.True(t, expired)
	assert.Equal(t, 0, tm.Remaining())
	assert.False(t, tm.Running())
	assert.InDelta(t, 0.0, tm.Fraction(), 1e-9)
}
