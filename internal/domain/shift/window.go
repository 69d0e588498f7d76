package shift

import (
	"time"

	"github.com/nivel36/janus/internal/domain/schedule"
	"github.com/nivel36/janus/internal/domain/timelog"
)

// WindowFor converts a local schedule rule into the absolute interval it
// covers on date in the given zone. When the rule's end clock is before
// its start clock the shift runs overnight and the end is anchored on the
// following calendar day.
func WindowFor(date time.Time, r schedule.TimeRange, loc *time.Location) timelog.TimeInterval {
	year, month, day := date.Date()

	start := time.Date(year, month, day,
		r.StartTime.Hour(), r.StartTime.Minute(), 0, 0, loc)
	end := time.Date(year, month, day,
		r.EndTime.Hour(), r.EndTime.Minute(), 0, 0, loc)

	if end.Before(start) {
		end = time.Date(year, month, day+1,
			r.EndTime.Hour(), r.EndTime.Minute(), 0, 0, loc)
	}

	return timelog.TimeInterval{Start: start, End: end}
}

// sameLocalDay reports whether instant t falls on the calendar day of date
// when observed in loc. Only the year, month and day of date are read.
func sameLocalDay(t time.Time, date time.Time, loc *time.Location) bool {
	ty, tm, td := t.In(loc).Date()
	dy, dm, dd := date.Date()
	return ty == dy && tm == dm && td == dd
}

// beforeLocalDay reports whether instant t falls on a calendar day earlier
// than date when observed in loc.
func beforeLocalDay(t time.Time, date time.Time, loc *time.Location) bool {
	local := t.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(target)
}
