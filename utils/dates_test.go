package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	at := time.Date(2024, time.June, 15, 18, 42, 7, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), BeginningOfDay(at))
}

func TestBeginningOfMonth(t *testing.T) {
	at := time.Date(2024, time.June, 15, 18, 42, 7, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), BeginningOfMonth(at))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}

func TestTomorrowRange(t *testing.T) {
	at := time.Date(2024, time.June, 15, 18, 42, 7, 0, time.UTC)
	start, end := TomorrowRange(at)

	assert.Equal(t, time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC), end)
}
