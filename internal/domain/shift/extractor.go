package shift

import (
	"fmt"
	"time"

	"github.com/nivel36/janus/internal/domain/timelog"
)

// TimeLogsExtractor selects the sub-range of an ordered log collection
// that belongs to the shift for a target date, given the detected pauses.
// Extractors are stateless and side-effect-free.
type TimeLogsExtractor interface {
	Extract(date time.Time, logs timelog.TimeLogs, pauses []Pause) (timelog.TimeLogs, error)
}

// LeftSegmentExtractor keeps everything up to and including the log before
// the first pause.
type LeftSegmentExtractor struct{}

func (LeftSegmentExtractor) Extract(date time.Time, logs timelog.TimeLogs, pauses []Pause) (timelog.TimeLogs, error) {
	if len(pauses) == 0 {
		return timelog.TimeLogs{}, ErrNoPauses
	}
	idx := logs.IndexOf(pauses[0].Before)
	if idx < 0 {
		return timelog.TimeLogs{}, fmt.Errorf("log %s: %w", pauses[0].Before.ID, ErrBoundaryNotFound)
	}
	return logs.Slice(0, idx+1)
}

// RightSegmentExtractor keeps everything from the log after the first
// pause onward.
type RightSegmentExtractor struct{}

func (RightSegmentExtractor) Extract(date time.Time, logs timelog.TimeLogs, pauses []Pause) (timelog.TimeLogs, error) {
	if len(pauses) == 0 {
		return timelog.TimeLogs{}, ErrNoPauses
	}
	idx := logs.IndexOf(pauses[0].After)
	if idx < 0 {
		return timelog.TimeLogs{}, fmt.Errorf("log %s: %w", pauses[0].After.ID, ErrBoundaryNotFound)
	}
	return logs.Slice(idx, logs.Len())
}

// ShiftStartAnchoredExtractor resolves the two-or-more-pauses case. The
// anchor is the first log entered on the target date; the segment runs
// from the nearest pause strictly before the anchor to the nearest pause
// at or after it, inclusive of the boundary logs adjacent to the anchor.
type ShiftStartAnchoredExtractor struct {
	Location *time.Location
}

func (e ShiftStartAnchoredExtractor) Extract(date time.Time, logs timelog.TimeLogs, pauses []Pause) (timelog.TimeLogs, error) {
	if len(pauses) < 2 {
		return timelog.TimeLogs{}, ErrTooFewPauses
	}

	anchor := -1
	for i := 0; i < logs.Len(); i++ {
		if sameLocalDay(logs.At(i).Entry, date, e.Location) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return timelog.TimeLogs{}, ErrAnchorNotFound
	}

	from := 0
	to := logs.Len()
	for _, p := range pauses {
		afterIdx := logs.IndexOf(p.After)
		beforeIdx := logs.IndexOf(p.Before)
		if afterIdx < 0 || beforeIdx < 0 {
			return timelog.TimeLogs{}, fmt.Errorf("pause between %s and %s: %w", p.Before.ID, p.After.ID, ErrBoundaryNotFound)
		}
		// Nearest pause strictly before the anchor opens the segment.
		if afterIdx <= anchor && afterIdx > from {
			from = afterIdx
		}
		// Nearest pause at or after the anchor closes it.
		if beforeIdx >= anchor && beforeIdx+1 < to {
			to = beforeIdx + 1
		}
	}

	return logs.Slice(from, to)
}
