package shift

import (
	"fmt"
	"time"

	"github.com/nivel36/janus/internal/domain/timelog"
)

// Pause is a long gap between two consecutive closed logs, identified by
// the pair of logs straddling it.
type Pause struct {
	Before   timelog.TimeLog
	After    timelog.TimeLog
	Duration time.Duration
}

// DetectPauses walks consecutive pairs of logs and records every gap at or
// above threshold. A negative gap means the sequence is not chronological,
// which is a data-integrity violation, never a recoverable condition.
func DetectPauses(logs timelog.TimeLogs, threshold time.Duration) ([]Pause, error) {
	var pauses []Pause
	for i := 0; i+1 < logs.Len(); i++ {
		current := logs.At(i)
		next := logs.At(i + 1)

		gap := next.Entry.Sub(*current.Exit)
		if gap < 0 {
			return nil, fmt.Errorf("logs %s and %s: %w", current.ID, next.ID, ErrBackwardsGap)
		}
		if gap >= threshold {
			pauses = append(pauses, Pause{
				Before:   current,
				After:    next,
				Duration: gap,
			})
		}
	}
	return pauses, nil
}
