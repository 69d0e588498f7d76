package shift

import (
	"testing"
	"time"

	"github.com/nivel36/janus/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func clockOf(hour, min int) time.Time {
	return time.Date(2000, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestWindowFor_DayShift(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r := schedule.TimeRange{StartTime: clockOf(9, 0), EndTime: clockOf(17, 0)}

	window := WindowFor(date, r, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), window.End)
}

func TestWindowFor_OvernightWrapsToNextDay(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r := schedule.TimeRange{StartTime: clockOf(22, 0), EndTime: clockOf(6, 0)}

	window := WindowFor(date, r, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 3, 3, 6, 0, 0, 0, time.UTC), window.End)
	assert.True(t, r.IsOvernight())
}

func TestWindowFor_HonorsZone(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r := schedule.TimeRange{StartTime: clockOf(9, 0), EndTime: clockOf(17, 0)}

	window := WindowFor(date, r, zone)

	// 09:00 local is 07:00 UTC
	assert.Equal(t, time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), window.Start.UTC())
	assert.Equal(t, time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC), window.End.UTC())
}
