package workshift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nivel36/janus/internal/domain/admin"
	"github.com/nivel36/janus/internal/domain/employee"
	"github.com/nivel36/janus/internal/domain/schedule"
	"github.com/nivel36/janus/internal/domain/shift"
	"github.com/nivel36/janus/internal/domain/timelog"
	"github.com/nivel36/janus/internal/domain/worksite"
	"github.com/nivel36/janus/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs every repository the service depends on with in-memory
// state, so precompute runs can be observed end to end.
type fakeStore struct {
	logs      []timelog.TimeLog
	linked    map[string]string
	shifts    map[string]shift.WorkShift
	schedules map[string]schedule.TimeRange
	worksites map[string]worksite.Worksite
	policy    admin.Policy

	// ghostEmployees are reported as having orphans even though no logs
	// exist for them.
	ghostEmployees []string

	saves       int
	existsCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		linked:    map[string]string{},
		shifts:    map[string]shift.WorkShift{},
		schedules: map[string]schedule.TimeRange{},
		worksites: map[string]worksite.Worksite{"site-1": {ID: "site-1", Name: "HQ", Timezone: "UTC"}},
		policy:    admin.Policy{DaysUntilLocked: 3},
	}
}

func shiftKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.UTC().Format("2006-01-02")
}

func (f *fakeStore) Save(_ context.Context, ws shift.WorkShift) (shift.WorkShift, error) {
	if ws.ID == "" {
		ws.ID = fmt.Sprintf("ws-%d", f.saves+1)
	}
	for _, lg := range ws.Logs.Logs() {
		f.linked[lg.ID] = ws.ID
	}
	f.shifts[shiftKey(ws.EmployeeID, ws.Date)] = ws
	f.saves++
	return ws, nil
}

func (f *fakeStore) ExistsByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	f.existsCalls++
	_, ok := f.shifts[shiftKey(employeeID, date)]
	return ok, nil
}

func (f *fakeStore) FindByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (shift.WorkShift, error) {
	ws, ok := f.shifts[shiftKey(employeeID, date)]
	if !ok {
		return shift.WorkShift{}, shift.ErrWorkShiftNotFound
	}
	return ws, nil
}

func (f *fakeStore) FindClosedByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]timelog.TimeLog, error) {
	var out []timelog.TimeLog
	for _, lg := range f.logs {
		if lg.EmployeeID == employeeID && lg.Closed() &&
			!lg.Entry.Before(from) && lg.Entry.Before(to) {
			out = append(out, lg)
		}
	}
	return out, nil
}

func (f *fakeStore) FindOrphanEmployeeIDs(_ context.Context, anchor time.Time) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for _, lg := range f.logs {
		if _, ok := f.linked[lg.ID]; ok {
			continue
		}
		if lg.Closed() && !lg.Entry.Before(anchor) && !seen[lg.EmployeeID] {
			seen[lg.EmployeeID] = true
			ids = append(ids, lg.EmployeeID)
		}
	}
	return append(ids, f.ghostEmployees...), nil
}

func (f *fakeStore) FindOrphanByEmployee(_ context.Context, anchor time.Time, employeeID string) ([]timelog.TimeLog, error) {
	var out []timelog.TimeLog
	for _, lg := range f.logs {
		if _, ok := f.linked[lg.ID]; ok {
			continue
		}
		if lg.EmployeeID == employeeID && lg.Closed() && !lg.Entry.Before(anchor) {
			out = append(out, lg)
		}
	}
	return out, nil
}

func (f *fakeStore) FindTimeRange(_ context.Context, employeeID string, _ time.Time) (*schedule.TimeRange, error) {
	tr, ok := f.schedules[employeeID]
	if !ok {
		return nil, nil
	}
	return &tr, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (worksite.Worksite, error) {
	site, ok := f.worksites[id]
	if !ok {
		return worksite.Worksite{}, worksite.ErrWorksiteNotFound
	}
	return site, nil
}

func (f *fakeStore) Get(_ context.Context) (admin.Policy, error) {
	return f.policy, nil
}

// fakeEmployeeRepo is separate from fakeStore because its GetByID clashes
// with the worksite one.
type fakeEmployeeRepo struct {
	missing map[string]bool
}

func (f fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if f.missing[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FullName: "Test Employee"}, nil
}

func newTestService(store *fakeStore, now time.Time) shift.WorkShiftService {
	return NewWorkShiftService(store, store, store, store, fakeEmployeeRepo{}, store,
		shift.DefaultShiftPolicy, clock.Fixed(now))
}

func workLog(id, employeeID, worksiteID string, entry, exit time.Time) timelog.TimeLog {
	return timelog.TimeLog{
		ID:         id,
		EmployeeID: employeeID,
		WorksiteID: worksiteID,
		Entry:      entry,
		Exit:       &exit,
	}
}

func utcDay(d, hour, min int) time.Time {
	return time.Date(2026, time.March, d, hour, min, 0, 0, time.UTC)
}

func TestPrecompute_MaterializesOrphanLogs(t *testing.T) {
	store := newFakeStore()
	store.logs = []timelog.TimeLog{
		workLog("a", "emp-1", "site-1", utcDay(2, 9, 0), utcDay(2, 13, 0)),
		workLog("b", "emp-1", "site-1", utcDay(2, 14, 0), utcDay(2, 18, 0)),
		workLog("c", "emp-1", "site-1", utcDay(3, 9, 0), utcDay(3, 17, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	require.NoError(t, svc.Precompute(context.Background()))

	assert.Equal(t, 2, store.saves)
	day2, err := store.FindByEmployeeAndDate(context.Background(), "emp-1", utcDay(2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, day2.WorkDuration)
	assert.Equal(t, time.Hour, day2.PauseDuration)

	day3, err := store.FindByEmployeeAndDate(context.Background(), "emp-1", utcDay(3, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, day3.WorkDuration)

	for _, id := range []string{"a", "b", "c"} {
		assert.Contains(t, store.linked, id)
	}
}

func TestPrecompute_SecondRunFindsNothing(t *testing.T) {
	store := newFakeStore()
	store.logs = []timelog.TimeLog{
		workLog("a", "emp-1", "site-1", utcDay(2, 9, 0), utcDay(2, 17, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	require.NoError(t, svc.Precompute(context.Background()))
	require.Equal(t, 1, store.saves)

	require.NoError(t, svc.Precompute(context.Background()))
	assert.Equal(t, 1, store.saves)
}

func TestPrecompute_ToleratesEmployeeWithoutOrphans(t *testing.T) {
	store := newFakeStore()
	store.ghostEmployees = []string{"emp-ghost"}
	svc := newTestService(store, utcDay(10, 12, 0))

	require.NoError(t, svc.Precompute(context.Background()))
	assert.Zero(t, store.saves)
}

func TestPrecompute_IsolatesPerEmployeeFailures(t *testing.T) {
	store := newFakeStore()
	store.logs = []timelog.TimeLog{
		workLog("a", "emp-bad", "site-missing", utcDay(2, 9, 0), utcDay(2, 17, 0)),
		workLog("b", "emp-good", "site-1", utcDay(2, 9, 0), utcDay(2, 17, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	require.NoError(t, svc.Precompute(context.Background()))

	assert.Equal(t, 1, store.saves)
	_, err := store.FindByEmployeeAndDate(context.Background(), "emp-good", utcDay(2, 0, 0))
	assert.NoError(t, err)
	_, err = store.FindByEmployeeAndDate(context.Background(), "emp-bad", utcDay(2, 0, 0))
	assert.ErrorIs(t, err, shift.ErrWorkShiftNotFound)
}

func TestPrecompute_SplitsBucketsPerWorksite(t *testing.T) {
	store := newFakeStore()
	store.worksites["site-2"] = worksite.Worksite{ID: "site-2", Name: "Branch", Timezone: "UTC"}
	store.logs = []timelog.TimeLog{
		workLog("a", "emp-1", "site-1", utcDay(2, 9, 0), utcDay(2, 13, 0)),
		workLog("b", "emp-1", "site-2", utcDay(2, 14, 0), utcDay(2, 18, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	require.NoError(t, svc.Precompute(context.Background()))

	// Same local day but different worksites: the later save wins the
	// (employee, date) slot, yet both logs end up linked.
	assert.Equal(t, 2, store.saves)
	assert.Contains(t, store.linked, "a")
	assert.Contains(t, store.linked, "b")
}

func TestGetWorkShift_RecentDayComposedOnTheFly(t *testing.T) {
	store := newFakeStore()
	store.logs = []timelog.TimeLog{
		workLog("a", "emp-1", "site-1", utcDay(9, 9, 0), utcDay(9, 13, 0)),
		workLog("b", "emp-1", "site-1", utcDay(9, 14, 0), utcDay(9, 18, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	got, err := svc.GetWorkShift(context.Background(), "emp-1", utcDay(9, 0, 0))
	require.NoError(t, err)
	assert.False(t, got.Materialized)
	assert.Equal(t, 480, got.WorkMinutes)
	assert.Equal(t, 60, got.PauseMinutes)
	assert.Zero(t, store.saves)
	assert.Zero(t, store.existsCalls)
}

func TestGetWorkShift_LockedDayServedFromStore(t *testing.T) {
	store := newFakeStore()
	logs, err := timelog.NewTimeLogs([]timelog.TimeLog{
		workLog("a", "emp-1", "site-1", utcDay(1, 9, 0), utcDay(1, 17, 0)),
	})
	require.NoError(t, err)
	site := "site-1"
	store.shifts[shiftKey("emp-1", utcDay(1, 0, 0))] = shift.WorkShift{
		ID:           "ws-1",
		EmployeeID:   "emp-1",
		WorksiteID:   &site,
		Date:         utcDay(1, 0, 0),
		Logs:         logs,
		WorkDuration: 8 * time.Hour,
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	got, err := svc.GetWorkShift(context.Background(), "emp-1", utcDay(1, 0, 0))
	require.NoError(t, err)
	assert.True(t, got.Materialized)
	assert.Equal(t, 480, got.WorkMinutes)
	assert.Equal(t, 1, store.existsCalls)
}

func TestGetWorkShift_LockedButUnmaterializedFallsBackToCompose(t *testing.T) {
	store := newFakeStore()
	store.logs = []timelog.TimeLog{
		workLog("a", "emp-1", "site-1", utcDay(1, 9, 0), utcDay(1, 17, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	got, err := svc.GetWorkShift(context.Background(), "emp-1", utcDay(1, 0, 0))
	require.NoError(t, err)
	assert.False(t, got.Materialized)
	assert.Equal(t, 480, got.WorkMinutes)
}

func TestGetWorkShift_NoLogsYieldsEmptyShift(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, utcDay(10, 12, 0))

	got, err := svc.GetWorkShift(context.Background(), "emp-1", utcDay(9, 0, 0))
	require.NoError(t, err)
	assert.False(t, got.Materialized)
	assert.Zero(t, got.WorkMinutes)
	assert.Empty(t, got.Logs)
	assert.Nil(t, got.WorksiteID)
}

func TestGetWorkShift_UnknownEmployee(t *testing.T) {
	store := newFakeStore()
	svc := NewWorkShiftService(store, store, store, store,
		fakeEmployeeRepo{missing: map[string]bool{"ghost": true}}, store,
		shift.DefaultShiftPolicy, clock.Fixed(utcDay(10, 12, 0)))

	_, err := svc.GetWorkShift(context.Background(), "ghost", utcDay(9, 0, 0))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetWorkShift_UsesScheduleWhenPresent(t *testing.T) {
	store := newFakeStore()
	store.schedules["emp-1"] = schedule.TimeRange{
		StartTime: time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, time.January, 1, 17, 0, 0, 0, time.UTC),
	}
	store.logs = []timelog.TimeLog{
		// Outside the scheduled window even with the margin applied
		workLog("night", "emp-1", "site-1", utcDay(9, 0, 0), utcDay(9, 2, 0)),
		workLog("work", "emp-1", "site-1", utcDay(9, 8, 45), utcDay(9, 17, 5)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	got, err := svc.GetWorkShift(context.Background(), "emp-1", utcDay(9, 0, 0))
	require.NoError(t, err)
	require.Len(t, got.Logs, 1)
	assert.Equal(t, "work", got.Logs[0].ID)
}

func TestPrecompute_RespectsAnchorHorizon(t *testing.T) {
	store := newFakeStore()
	store.logs = []timelog.TimeLog{
		// Entered before the anchor: left for a later run's history import
		workLog("old", "emp-1", "site-1", utcDay(1, 9, 0), utcDay(1, 17, 0)),
	}
	svc := newTestService(store, utcDay(10, 12, 0))

	anchor := utcDay(10, 12, 0).AddDate(0, 0, -4)
	require.True(t, store.logs[0].Entry.Before(anchor))

	require.NoError(t, svc.Precompute(context.Background()))
	assert.Zero(t, store.saves)
}
