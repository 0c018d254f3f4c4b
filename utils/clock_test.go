package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	late := time.Date(2024, time.March, 15, 23, 59, 59, 999_000_000, time.Local)
	early := time.Date(2024, time.March, 15, 0, 0, 0, 1, time.Local)
	midnight := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	assert.Equal(t, midnight, StartOfDay(late))
	assert.Equal(t, midnight, StartOfDay(early))
	assert.Equal(t, midnight, StartOfDay(midnight))
}

func TestFixedClock(t *testing.T) {
	fixed := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.Local)
	clock := FixedClock{Fixed: fixed}

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now(), "fixed clock must not advance")
}
