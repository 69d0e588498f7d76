package workshift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nivel36/janus/internal/domain/admin"
	"github.com/nivel36/janus/internal/domain/employee"
	"github.com/nivel36/janus/internal/domain/schedule"
	"github.com/nivel36/janus/internal/domain/shift"
	"github.com/nivel36/janus/internal/domain/timelog"
	"github.com/nivel36/janus/internal/domain/worksite"
	"github.com/nivel36/janus/internal/pkg/clock"
)

// Closed logs are fetched from one day before to two days after the
// target date, enough to cover shifts longer than 24 hours.
const (
	lookupPaddingBefore = 1
	lookupPaddingAfter  = 2
)

type WorkShiftServiceImpl struct {
	shift.WorkShiftRepository
	timelog.TimeLogRepository
	schedule.ScheduleRepository
	worksite.WorksiteRepository
	employee.EmployeeRepository
	admin.PolicyRepository
	policy shift.ShiftPolicy
	clock  clock.Clock
}

func NewWorkShiftService(
	workShiftRepo shift.WorkShiftRepository,
	timeLogRepo timelog.TimeLogRepository,
	scheduleRepo schedule.ScheduleRepository,
	worksiteRepo worksite.WorksiteRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo admin.PolicyRepository,
	policy shift.ShiftPolicy,
	clk clock.Clock,
) shift.WorkShiftService {
	return &WorkShiftServiceImpl{
		WorkShiftRepository: workShiftRepo,
		TimeLogRepository:   timeLogRepo,
		ScheduleRepository:  scheduleRepo,
		WorksiteRepository:  worksiteRepo,
		EmployeeRepository:  employeeRepo,
		PolicyRepository:    policyRepo,
		policy:              policy,
		clock:               clk,
	}
}

// GetWorkShift implements shift.WorkShiftService.
func (s *WorkShiftServiceImpl) GetWorkShift(ctx context.Context, employeeID string, date time.Time) (shift.WorkShiftResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return shift.WorkShiftResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	adminPolicy, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return shift.WorkShiftResponse{}, fmt.Errorf("failed to get admin policy: %w", err)
	}

	if s.isLocked(date, adminPolicy) {
		exists, err := s.WorkShiftRepository.ExistsByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return shift.WorkShiftResponse{}, fmt.Errorf("failed to check work shift existence: %w", err)
		}
		if exists {
			ws, err := s.WorkShiftRepository.FindByEmployeeAndDate(ctx, employeeID, date)
			if err != nil {
				return shift.WorkShiftResponse{}, fmt.Errorf("failed to find work shift: %w", err)
			}
			return shift.ToResponse(ws, true), nil
		}
		// Locked but never materialized: fall through and compute.
	}

	ws, err := s.composeForDate(ctx, employeeID, date)
	if err != nil {
		return shift.WorkShiftResponse{}, err
	}

	return shift.ToResponse(ws, false), nil
}

// isLocked reports whether date is old enough that its attendance is
// final. Locked days are served from the materialized store.
func (s *WorkShiftServiceImpl) isLocked(date time.Time, p admin.Policy) bool {
	now := s.clock.Now()
	horizon := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -p.DaysUntilLocked)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(horizon)
}

// composeForDate infers the shift for a single day on the fly, without
// persisting it.
func (s *WorkShiftServiceImpl) composeForDate(ctx context.Context, employeeID string, date time.Time) (shift.WorkShift, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -lookupPaddingBefore)
	to := from.AddDate(0, 0, lookupPaddingBefore+lookupPaddingAfter)

	raw, err := s.TimeLogRepository.FindClosedByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return shift.WorkShift{}, fmt.Errorf("failed to fetch time logs: %w", err)
	}

	logs, err := timelog.NewTimeLogs(raw)
	if err != nil {
		return shift.WorkShift{}, fmt.Errorf("failed to validate time logs: %w", err)
	}
	if logs.IsEmpty() {
		return shift.WorkShift{EmployeeID: employeeID, Date: date, Logs: timelog.EmptyTimeLogs}, nil
	}

	site, err := s.WorksiteRepository.GetByID(ctx, logs.First().WorksiteID)
	if err != nil {
		return shift.WorkShift{}, fmt.Errorf("failed to get worksite: %w", err)
	}
	loc := site.Location()

	timeRange, err := s.ScheduleRepository.FindTimeRange(ctx, employeeID, date)
	if err != nil {
		return shift.WorkShift{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	strategy := shift.ResolveStrategy(timeRange, loc, s.policy)
	composer := shift.NewWorkShiftComposer(strategy)
	return composer.Compose(employeeID, date, logs)
}

// Precompute implements shift.WorkShiftService. It materializes every
// orphan time log older than the lock horizon into durable work shifts.
// A failure in one employee's batch aborts that employee only.
func (s *WorkShiftServiceImpl) Precompute(ctx context.Context) error {
	adminPolicy, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get admin policy: %w", err)
	}

	anchor := s.clock.Now().AddDate(0, 0, -(adminPolicy.DaysUntilLocked + 1))

	employeeIDs, err := s.TimeLogRepository.FindOrphanEmployeeIDs(ctx, anchor)
	if err != nil {
		return fmt.Errorf("failed to find employees with orphan logs: %w", err)
	}

	var failed int
	for _, employeeID := range employeeIDs {
		if err := s.precomputeEmployee(ctx, anchor, employeeID); err != nil {
			slog.Error("Failed to precompute work shifts", "employee_id", employeeID, "error", err)
			failed++
		}
	}

	slog.Info("Work shift precompute finished",
		"employees", len(employeeIDs), "failed", failed)
	return nil
}

func (s *WorkShiftServiceImpl) precomputeEmployee(ctx context.Context, anchor time.Time, employeeID string) error {
	raw, err := s.TimeLogRepository.FindOrphanByEmployee(ctx, anchor, employeeID)
	if err != nil {
		return fmt.Errorf("failed to fetch orphan logs: %w", err)
	}
	if len(raw) == 0 {
		// The reporting query said this employee had orphans; tolerate the
		// race and move on.
		slog.Warn("No orphan time logs found for reported employee", "employee_id", employeeID)
		return nil
	}

	ordered, err := timelog.NewTimeLogs(raw)
	if err != nil {
		return fmt.Errorf("failed to validate orphan logs: %w", err)
	}

	remaining := ordered.Logs()
	for len(remaining) > 0 {
		head := remaining[0]

		site, err := s.WorksiteRepository.GetByID(ctx, head.WorksiteID)
		if err != nil {
			return fmt.Errorf("failed to get worksite %s: %w", head.WorksiteID, err)
		}
		loc := site.Location()

		entryLocal := head.Entry.In(loc)
		dayStart := time.Date(entryLocal.Year(), entryLocal.Month(), entryLocal.Day(), 0, 0, 0, 0, loc)
		dayEnd := dayStart.AddDate(0, 0, 1)

		bucket := []timelog.TimeLog{head}
		rest := remaining[:0:0]
		for _, lg := range remaining[1:] {
			if lg.WorksiteID == head.WorksiteID &&
				!lg.Entry.Before(dayStart) && lg.Entry.Before(dayEnd) {
				bucket = append(bucket, lg)
			} else {
				rest = append(rest, lg)
			}
		}
		remaining = rest

		if err := s.materializeBucket(ctx, employeeID, dayStart, loc, bucket); err != nil {
			return err
		}
	}

	return nil
}

func (s *WorkShiftServiceImpl) materializeBucket(ctx context.Context, employeeID string, day time.Time, loc *time.Location, bucket []timelog.TimeLog) error {
	logs, err := timelog.NewTimeLogs(bucket)
	if err != nil {
		return fmt.Errorf("failed to validate bucket logs: %w", err)
	}

	timeRange, err := s.ScheduleRepository.FindTimeRange(ctx, employeeID, day)
	if err != nil {
		return fmt.Errorf("failed to resolve schedule: %w", err)
	}

	strategy := shift.ResolveStrategy(timeRange, loc, s.policy)
	composer := shift.NewWorkShiftComposer(strategy)

	ws, err := composer.Compose(employeeID, day, logs)
	if err != nil {
		return fmt.Errorf("failed to compose work shift: %w", err)
	}

	if _, err := s.WorkShiftRepository.Save(ctx, ws); err != nil {
		return fmt.Errorf("failed to save work shift: %w", err)
	}
	return nil
}
