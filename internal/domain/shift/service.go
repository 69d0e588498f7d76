package shift

import (
	"context"
	"time"
)

// WorkShiftService defines the business operations around work shifts.
type WorkShiftService interface {
	// GetWorkShift returns the shift for an employee on a calendar date.
	// Materialized shifts past the lock horizon are returned directly;
	// anything younger is composed on the fly from raw time logs.
	GetWorkShift(ctx context.Context, employeeID string, date time.Time) (WorkShiftResponse, error)

	// Precompute materializes work shifts for every employee that still
	// has orphan time logs older than the lock horizon.
	Precompute(ctx context.Context) error
}
