package shift

import (
	"testing"
	"time"

	"github.com/nivel36/janus/internal/domain/timelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeDaySpan(t *testing.T) (timelog.TimeLogs, []Pause) {
	t.Helper()
	logs := mustLogs(t,
		closedLog("prev", "site-1", day(1, 9, 0), day(1, 17, 0)),
		closedLog("mid-am", "site-1", day(2, 9, 0), day(2, 13, 0)),
		closedLog("mid-pm", "site-1", day(2, 14, 0), day(2, 17, 0)),
		closedLog("next", "site-1", day(3, 9, 0), day(3, 17, 0)),
	)
	pauses, err := DetectPauses(logs, 4*time.Hour)
	require.NoError(t, err)
	require.Len(t, pauses, 2)
	return logs, pauses
}

func TestLeftSegmentExtractor(t *testing.T) {
	logs := mustLogs(t,
		closedLog("a", "site-1", day(2, 8, 0), day(2, 16, 0)),
		closedLog("b", "site-1", day(3, 8, 0), day(3, 16, 0)),
	)
	pauses, err := DetectPauses(logs, 4*time.Hour)
	require.NoError(t, err)

	got, err := LeftSegmentExtractor{}.Extract(day(2, 0, 0), logs, pauses)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "a", got.First().ID)
}

func TestLeftSegmentExtractor_RequiresPause(t *testing.T) {
	logs := mustLogs(t, closedLog("a", "site-1", day(2, 8, 0), day(2, 16, 0)))

	_, err := LeftSegmentExtractor{}.Extract(day(2, 0, 0), logs, nil)
	assert.ErrorIs(t, err, ErrNoPauses)
}

func TestRightSegmentExtractor(t *testing.T) {
	logs := mustLogs(t,
		closedLog("a", "site-1", day(1, 23, 0), day(1, 23, 59)),
		closedLog("b", "site-1", day(2, 8, 0), day(2, 16, 0)),
	)
	pauses, err := DetectPauses(logs, 4*time.Hour)
	require.NoError(t, err)

	got, err := RightSegmentExtractor{}.Extract(day(2, 0, 0), logs, pauses)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "b", got.First().ID)
}

func TestRightSegmentExtractor_BoundaryMustExist(t *testing.T) {
	logs := mustLogs(t,
		closedLog("a", "site-1", day(2, 8, 0), day(2, 16, 0)),
	)
	foreign := Pause{
		Before: closedLog("x", "site-1", day(1, 8, 0), day(1, 16, 0)),
		After:  closedLog("y", "site-1", day(3, 8, 0), day(3, 16, 0)),
	}

	_, err := RightSegmentExtractor{}.Extract(day(2, 0, 0), logs, []Pause{foreign})
	assert.ErrorIs(t, err, ErrBoundaryNotFound)
}

func TestShiftStartAnchoredExtractor_SelectsMiddleDay(t *testing.T) {
	logs, pauses := threeDaySpan(t)

	got, err := ShiftStartAnchoredExtractor{Location: time.UTC}.Extract(day(2, 0, 0), logs, pauses)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "mid-am", got.First().ID)
	assert.Equal(t, "mid-pm", got.Last().ID)
}

func TestShiftStartAnchoredExtractor_NoLeftPause(t *testing.T) {
	logs := mustLogs(t,
		closedLog("day1-am", "site-1", day(1, 8, 0), day(1, 12, 0)),
		closedLog("day1-pm", "site-1", day(1, 18, 0), day(1, 22, 0)),
		closedLog("day2", "site-1", day(2, 8, 0), day(2, 16, 0)),
	)
	pauses, err := DetectPauses(logs, 4*time.Hour)
	require.NoError(t, err)
	require.Len(t, pauses, 2)

	// Anchor is the first log of day 1; no pause lies before it, so the
	// segment opens at the start of the collection.
	got, err := ShiftStartAnchoredExtractor{Location: time.UTC}.Extract(day(1, 0, 0), logs, pauses)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "day1-am", got.First().ID)
}

func TestShiftStartAnchoredExtractor_NoRightPause(t *testing.T) {
	logs := mustLogs(t,
		closedLog("day1", "site-1", day(1, 8, 0), day(1, 16, 0)),
		closedLog("day2", "site-1", day(2, 8, 0), day(2, 16, 0)),
		closedLog("day3-am", "site-1", day(3, 8, 0), day(3, 12, 0)),
		closedLog("day3-pm", "site-1", day(3, 13, 0), day(3, 16, 0)),
	)
	pauses, err := DetectPauses(logs, 4*time.Hour)
	require.NoError(t, err)
	require.Len(t, pauses, 2)

	got, err := ShiftStartAnchoredExtractor{Location: time.UTC}.Extract(day(3, 0, 0), logs, pauses)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "day3-am", got.First().ID)
	assert.Equal(t, "day3-pm", got.Last().ID)
}

func TestShiftStartAnchoredExtractor_AnchorMissing(t *testing.T) {
	logs, pauses := threeDaySpan(t)

	_, err := ShiftStartAnchoredExtractor{Location: time.UTC}.Extract(day(20, 0, 0), logs, pauses)
	assert.ErrorIs(t, err, ErrAnchorNotFound)
}

func TestShiftStartAnchoredExtractor_RequiresTwoPauses(t *testing.T) {
	logs, pauses := threeDaySpan(t)

	_, err := ShiftStartAnchoredExtractor{Location: time.UTC}.Extract(day(2, 0, 0), logs, pauses[:1])
	assert.ErrorIs(t, err, ErrTooFewPauses)
}
