package shift

import (
	"fmt"
	"time"

	"github.com/nivel36/janus/internal/domain/schedule"
	"github.com/nivel36/janus/internal/domain/timelog"
)

// ShiftInferenceStrategy decides which subset of an employee's ordered
// closed logs constitutes the shift for a target date. Input logs are
// pre-filtered to a generous window around the date and ordered by entry
// time; the output is a subset preserving that order.
type ShiftInferenceStrategy interface {
	Infer(date time.Time, logs timelog.TimeLogs) (timelog.TimeLogs, error)
}

// ResolveStrategy picks the scheduled strategy when a schedule rule exists
// for the target date, and the unscheduled one otherwise.
func ResolveStrategy(timeRange *schedule.TimeRange, loc *time.Location, policy ShiftPolicy) ShiftInferenceStrategy {
	if timeRange != nil {
		return ScheduledShiftStrategy{
			TimeRange: *timeRange,
			Location:  loc,
			Policy:    policy,
		}
	}
	return UnscheduledShiftStrategy{
		Location: loc,
		Policy:   policy,
	}
}

// ScheduledShiftStrategy selects the logs overlapping the scheduled
// window widened by the policy's selection margin. The margin tolerates
// early arrival and late departure without conflating adjacent shifts.
type ScheduledShiftStrategy struct {
	TimeRange schedule.TimeRange
	Location  *time.Location
	Policy    ShiftPolicy
}

func (s ScheduledShiftStrategy) Infer(date time.Time, logs timelog.TimeLogs) (timelog.TimeLogs, error) {
	window := WindowFor(date, s.TimeRange, s.Location).ExpandBy(s.Policy.SelectionMargin)

	var selected []timelog.TimeLog
	for i := 0; i < logs.Len(); i++ {
		lg := logs.At(i)
		// Logs are ordered by entry time: once an entry reaches the
		// window's end no later log can match.
		if !lg.Entry.Before(window.End) {
			break
		}
		interval, err := lg.Interval()
		if err != nil {
			return timelog.TimeLogs{}, fmt.Errorf("log %s: %w", lg.ID, err)
		}
		if interval.Overlaps(window) {
			selected = append(selected, lg)
		}
	}

	return timelog.NewTimeLogs(selected)
}

// UnscheduledShiftStrategy reconstructs a shift with no schedule to anchor
// on, using long pauses between logs as shift boundaries.
type UnscheduledShiftStrategy struct {
	Location *time.Location
	Policy   ShiftPolicy
}

func (s UnscheduledShiftStrategy) Infer(date time.Time, logs timelog.TimeLogs) (timelog.TimeLogs, error) {
	if logs.IsEmpty() {
		return timelog.EmptyTimeLogs, nil
	}

	pauses, err := DetectPauses(logs, s.Policy.LongPauseThreshold)
	if err != nil {
		return timelog.TimeLogs{}, err
	}

	switch len(pauses) {
	case 0:
		// No long pause: the whole input is one continuous shift.
		return logs, nil
	case 1:
		return s.resolveSinglePause(date, logs, pauses)
	default:
		extractor := ShiftStartAnchoredExtractor{Location: s.Location}
		return extractor.Extract(date, logs, pauses)
	}
}

// resolveSinglePause disambiguates a lone pause: it either separates
// yesterday's tail from today's shift or today's shift from tomorrow's
// head. If the log before the pause exits on a day earlier than the
// target date, today's shift lies to the right of the pause.
func (s UnscheduledShiftStrategy) resolveSinglePause(date time.Time, logs timelog.TimeLogs, pauses []Pause) (timelog.TimeLogs, error) {
	var extractor TimeLogsExtractor
	if beforeLocalDay(*pauses[0].Before.Exit, date, s.Location) {
		extractor = RightSegmentExtractor{}
	} else {
		extractor = LeftSegmentExtractor{}
	}
	return extractor.Extract(date, logs, pauses)
}
