package shift

import "errors"

// Work shift domain errors
var (
	ErrInvalidPolicy     = errors.New("shift policy durations must not be negative")
	ErrBackwardsGap      = errors.New("time log exits after the next log's entry")
	ErrNoPauses          = errors.New("at least one pause is required")
	ErrTooFewPauses      = errors.New("at least two pauses are required")
	ErrAnchorNotFound    = errors.New("no log entered on the target date")
	ErrBoundaryNotFound  = errors.New("pause boundary log not found in collection")
	ErrWorkShiftNotFound = errors.New("work shift not found")
)
