package schedule

import "time"

// TimeRange is a local schedule rule: the expected clock-in and clock-out
// times of day. Only the clock components of both fields are meaningful;
// their date parts are ignored. An end clock earlier than the start clock
// means the shift runs past midnight.
type TimeRange struct {
	StartTime time.Time
	EndTime   time.Time
}

// IsOvernight reports whether the rule wraps past midnight.
func (r TimeRange) IsOvernight() bool {
	start := r.StartTime.Hour()*60 + r.StartTime.Minute()
	end := r.EndTime.Hour()*60 + r.EndTime.Minute()
	return end < start
}
