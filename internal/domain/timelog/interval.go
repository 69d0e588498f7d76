package timelog

import "time"

// TimeInterval is an immutable half-open interval [Start, End).
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval builds a half-open interval. End must not be before Start.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if end.Before(start) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Duration is the length of the interval.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty reports whether the interval covers no instant.
func (i TimeInterval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}

// Overlaps reports whether both intervals share at least one instant.
// Touching intervals do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Touches reports whether one interval ends exactly where the other starts.
func (i TimeInterval) Touches(other TimeInterval) bool {
	return i.End.Equal(other.Start) || other.End.Equal(i.Start)
}

// OverlapsOrTouches reports whether the intervals overlap or touch.
func (i TimeInterval) OverlapsOrTouches(other TimeInterval) bool {
	return i.Overlaps(other) || i.Touches(other)
}

// Merge returns the envelope of both intervals. The intervals must
// overlap or touch.
func (i TimeInterval) Merge(other TimeInterval) (TimeInterval, error) {
	if !i.OverlapsOrTouches(other) {
		return TimeInterval{}, ErrDisjointMerge
	}
	start := i.Start
	if other.Start.Before(start) {
		start = other.Start
	}
	end := i.End
	if other.End.After(end) {
		end = other.End
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Intersect returns the common sub-interval. ok is false when the
// intervals are disjoint.
func (i TimeInterval) Intersect(other TimeInterval) (intersection TimeInterval, ok bool) {
	if !i.Overlaps(other) {
		return TimeInterval{}, false
	}
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	return TimeInterval{Start: start, End: end}, true
}

// ExpandBy widens the interval symmetrically by margin on both sides.
func (i TimeInterval) ExpandBy(margin time.Duration) TimeInterval {
	return TimeInterval{
		Start: i.Start.Add(-margin),
		End:   i.End.Add(margin),
	}
}
