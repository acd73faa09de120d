package animate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterStartsAtZero(t *testing.T) {
	c := NewCounter([]int{500, 100000})
	assert.Equal(t, []int{0, 0}, c.Values())
	assert.False(t, c.Done())
}

func TestCounterSequenceIsNonDecreasingAndExact(t *testing.T) {
	targets := []int{0, 7, 500, 99999, 100000}
	c := NewCounter(targets)

	prev := c.Values()
	steps := 0
	for c.Advance() {
		steps++
		values := c.Values()
		for i := range values {
			assert.GreaterOrEqual(t, values[i], prev[i], "step %d counter %d decreased", steps, i)
		}
		prev = values
	}

	assert.Equal(t, Steps, steps)
	assert.True(t, c.Done())
	// The final displayed value equals the target exactly.
	assert.Equal(t, targets, c.Values())
}

func TestCounterClampsNegativeTargets(t *testing.T) {
	c := NewCounter([]int{-42, 10})
	for c.Advance() {
	}
	assert.Equal(t, []int{0, 10}, c.Values())
}

func TestCounterValueAt(t *testing.T) {
	// floor(progress x target)
	assert.Equal(t, 0, ValueAt(0, 1000))
	assert.Equal(t, 16, ValueAt(1, 1000))
	assert.Equal(t, 500, ValueAt(30, 1000))
	assert.Equal(t, 1000, ValueAt(60, 1000))
	// progress clamps to [0,1]
	assert.Equal(t, 1000, ValueAt(90, 1000))
	assert.Equal(t, 0, ValueAt(-3, 1000))
}

func TestCounterStopsEmittingAfterCompletion(t *testing.T) {
	c := NewCounter([]int{3})
	for c.Advance() {
	}
	assert.False(t, c.Advance())
	assert.Equal(t, []int{3}, c.Values())
}

func TestCounterStopReleasesTicker(t *testing.T) {
	c := NewCounter([]int{10})
	c.Start()
	require.NotNil(t, c.Tick())

	c.Stop()
	assert.Nil(t, c.Tick())
	// A stopped counter emits no further updates and cannot restart.
	assert.False(t, c.Advance())
	c.Start()
	assert.Nil(t, c.Tick())
	c.Stop() // idempotent
}
