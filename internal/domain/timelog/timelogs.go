package timelog

import (
	"fmt"
	"sort"
	"time"
)

// TimeLogs is an immutable, ordered, non-overlapping collection of closed
// time logs. The constructor validates the invariants once; any value that
// exists holds them for its entire lifetime.
type TimeLogs struct {
	logs []TimeLog
}

// EmptyTimeLogs is the empty collection.
var EmptyTimeLogs = TimeLogs{}

// NewTimeLogs builds a validated collection from an arbitrary slice. The
// input may arrive unsorted; records are ordered ascending by entry time.
// Any open record or any pair of overlapping records is a hard failure.
func NewTimeLogs(logs []TimeLog) (TimeLogs, error) {
	if len(logs) == 0 {
		return EmptyTimeLogs, nil
	}

	sorted := make([]TimeLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Entry.Before(sorted[j].Entry)
	})

	for i, lg := range sorted {
		if !lg.Closed() {
			return TimeLogs{}, fmt.Errorf("log %s: %w", lg.ID, ErrOpenLog)
		}
		if i > 0 {
			prev := sorted[i-1]
			if lg.Entry.Before(*prev.Exit) {
				return TimeLogs{}, fmt.Errorf("logs %s and %s: %w", prev.ID, lg.ID, ErrOverlappingLogs)
			}
		}
	}

	return TimeLogs{logs: sorted}, nil
}

// Len is the number of records in the collection.
func (t TimeLogs) Len() int {
	return len(t.logs)
}

// IsEmpty reports whether the collection holds no records.
func (t TimeLogs) IsEmpty() bool {
	return len(t.logs) == 0
}

// At returns the record at position i.
func (t TimeLogs) At(i int) TimeLog {
	return t.logs[i]
}

// First returns the earliest record. The collection must not be empty.
func (t TimeLogs) First() TimeLog {
	return t.logs[0]
}

// Last returns the latest record. The collection must not be empty.
func (t TimeLogs) Last() TimeLog {
	return t.logs[len(t.logs)-1]
}

// IndexOf locates a record by identity. Returns -1 when absent.
func (t TimeLogs) IndexOf(lg TimeLog) int {
	for i, candidate := range t.logs {
		if candidate.ID == lg.ID {
			return i
		}
	}
	return -1
}

// Slice returns the sub-collection [from, to). The result shares no state
// with the receiver and keeps the invariants by construction.
func (t TimeLogs) Slice(from, to int) (TimeLogs, error) {
	if from < 0 || to > len(t.logs) || from > to {
		return TimeLogs{}, fmt.Errorf("[%d, %d) over %d logs: %w", from, to, len(t.logs), ErrInvalidSlice)
	}
	sub := make([]TimeLog, to-from)
	copy(sub, t.logs[from:to])
	return TimeLogs{logs: sub}, nil
}

// TotalDuration is the sum of each record's exit minus entry.
func (t TimeLogs) TotalDuration() time.Duration {
	var total time.Duration
	for _, lg := range t.logs {
		total += lg.Duration()
	}
	return total
}

// Logs returns a defensive copy of the ordered records.
func (t TimeLogs) Logs() []TimeLog {
	out := make([]TimeLog, len(t.logs))
	copy(out, t.logs)
	return out
}
