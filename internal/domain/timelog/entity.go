package timelog

import "time"

// TimeLog is a single clock-in/clock-out record. Exit is nil while the
// employee is still clocked in; the inference engine only ever consumes
// closed records.
type TimeLog struct {
	ID         string
	EmployeeID string
	WorksiteID string
	Entry      time.Time
	Exit       *time.Time
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Closed reports whether the record has both entry and exit instants.
func (l TimeLog) Closed() bool {
	return l.Exit != nil
}

// Duration is the worked span between entry and exit. Zero for open records.
func (l TimeLog) Duration() time.Duration {
	if l.Exit == nil {
		return 0
	}
	return l.Exit.Sub(l.Entry)
}

// Interval returns the record's own half-open interval [entry, exit).
// It is only valid for closed records.
func (l TimeLog) Interval() (TimeInterval, error) {
	if l.Exit == nil {
		return TimeInterval{}, ErrOpenLog
	}
	return NewTimeInterval(l.Entry, *l.Exit)
}
