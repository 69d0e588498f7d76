package shift

import (
	"fmt"
	"time"

	"github.com/nivel36/janus/internal/domain/timelog"
)

// WorkShiftComposer aggregates the logs selected by a strategy into a
// WorkShift with its work and pause totals.
type WorkShiftComposer struct {
	strategy ShiftInferenceStrategy
}

func NewWorkShiftComposer(strategy ShiftInferenceStrategy) WorkShiftComposer {
	return WorkShiftComposer{strategy: strategy}
}

// Compose builds the work shift for employeeID on date out of the given
// ordered logs. An empty input, or an inference that selects nothing,
// yields an empty-skeleton shift meaning "no attendance that day"; it is
// not an error.
func (c WorkShiftComposer) Compose(employeeID string, date time.Time, logs timelog.TimeLogs) (WorkShift, error) {
	if logs.IsEmpty() {
		return c.emptyShift(employeeID, date), nil
	}

	selected, err := c.strategy.Infer(date, logs)
	if err != nil {
		return WorkShift{}, fmt.Errorf("failed to infer shift logs: %w", err)
	}
	if selected.IsEmpty() {
		return c.emptyShift(employeeID, date), nil
	}

	worksiteID := selected.First().WorksiteID

	return WorkShift{
		EmployeeID:    employeeID,
		WorksiteID:    &worksiteID,
		Date:          date,
		Logs:          selected,
		WorkDuration:  selected.TotalDuration(),
		PauseDuration: totalPause(selected),
	}, nil
}

func (c WorkShiftComposer) emptyShift(employeeID string, date time.Time) WorkShift {
	return WorkShift{
		EmployeeID: employeeID,
		Date:       date,
		Logs:       timelog.EmptyTimeLogs,
	}
}

// totalPause sums the gaps between consecutive selected logs. Only
// non-negative gaps count.
func totalPause(logs timelog.TimeLogs) time.Duration {
	var total time.Duration
	for i := 0; i+1 < logs.Len(); i++ {
		gap := logs.At(i + 1).Entry.Sub(*logs.At(i).Exit)
		if gap > 0 {
			total += gap
		}
	}
	return total
}
