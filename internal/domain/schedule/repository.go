package schedule

import (
	"context"
	"time"
)

// ScheduleRepository resolves the schedule rule in force for an employee
// on a calendar date.
type ScheduleRepository interface {
	// FindTimeRange returns the rule for the employee on date, or nil when
	// no schedule exists for that day. Absence is not an error.
	FindTimeRange(ctx context.Context, employeeID string, date time.Time) (*TimeRange, error)
}
