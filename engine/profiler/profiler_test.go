package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickBeforeInterval(t *testing.T) {
	p := NewProfiler()
	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
}

func TestTickAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.lastTime = time.Now().Add(-2 * time.Second)

	assert.True(t, p.Tick())
	// The window resets after a report.
	assert.False(t, p.Tick())
}
