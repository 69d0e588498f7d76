package timelog

import "errors"

// Time log domain errors
var (
	ErrOpenLog         = errors.New("time log is not closed")
	ErrOverlappingLogs = errors.New("time logs overlap")
	ErrInvalidInterval = errors.New("interval end is before its start")
	ErrDisjointMerge   = errors.New("cannot merge disjoint intervals")
	ErrInvalidSlice    = errors.New("slice bounds out of range")
)
