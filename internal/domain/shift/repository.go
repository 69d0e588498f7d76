package shift

import (
	"context"
	"time"
)

// WorkShiftRepository defines persistence for materialized work shifts.
type WorkShiftRepository interface {
	// Save upserts the shift for (employee, date) and links its time logs
	// to it in the same transaction.
	Save(ctx context.Context, ws WorkShift) (WorkShift, error)

	// ExistsByEmployeeAndDate reports whether a shift is already
	// materialized for the employee on date.
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// FindByEmployeeAndDate returns the materialized shift with its logs,
	// or ErrWorkShiftNotFound.
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (WorkShift, error)
}
