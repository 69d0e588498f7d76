package shift

import (
	"time"

	"github.com/nivel36/janus/internal/domain/timelog"
)

// WorkShift is one continuous period of attendance for one employee on one
// calendar day, materialized from its underlying time logs. At most one
// work shift exists per employee and date.
type WorkShift struct {
	ID            string
	EmployeeID    string
	WorksiteID    *string
	Date          time.Time
	Logs          timelog.TimeLogs
	WorkDuration  time.Duration
	PauseDuration time.Duration
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsEmpty reports whether the shift is an empty skeleton, meaning no
// attendance was recorded for that day.
func (w WorkShift) IsEmpty() bool {
	return w.Logs.IsEmpty()
}
