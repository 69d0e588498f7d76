package shift

import "time"

// ShiftPolicy carries the two tunable thresholds of the inference engine.
// SelectionMargin widens a scheduled window on both sides before logs are
// matched against it. LongPauseThreshold is the minimum gap between two
// consecutive logs that splits unscheduled attendance into separate shifts.
type ShiftPolicy struct {
	SelectionMargin    time.Duration
	LongPauseThreshold time.Duration
}

// DefaultShiftPolicy is the policy used when configuration provides none.
var DefaultShiftPolicy = ShiftPolicy{
	SelectionMargin:    4 * time.Hour,
	LongPauseThreshold: 4 * time.Hour,
}

// Validate rejects negative thresholds.
func (p ShiftPolicy) Validate() error {
	if p.SelectionMargin < 0 || p.LongPauseThreshold < 0 {
		return ErrInvalidPolicy
	}
	return nil
}
