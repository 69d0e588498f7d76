package timelog

import (
	"context"
	"time"
)

// TimeLogRepository defines data access for raw clock records. The
// inference engine reads logs; it never writes them except through the
// work-shift linkage performed by the shift repository.
type TimeLogRepository interface {
	// FindClosedByEmployeeBetween returns closed, non-deleted logs whose
	// entry falls in [from, to), ordered ascending by entry time.
	FindClosedByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]TimeLog, error)

	// FindOrphanEmployeeIDs returns the IDs of employees that have closed
	// logs entered at or after anchor not yet linked to any work shift.
	FindOrphanEmployeeIDs(ctx context.Context, anchor time.Time) ([]string, error)

	// FindOrphanByEmployee returns one employee's unlinked closed logs
	// entered at or after anchor, ordered ascending by entry time.
	FindOrphanByEmployee(ctx context.Context, anchor time.Time, employeeID string) ([]TimeLog, error)
}
