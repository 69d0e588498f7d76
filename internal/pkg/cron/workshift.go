package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/nivel36/janus/internal/domain/shift"
)

// WorkShiftJobs registers the nightly materialization of work shifts.
type WorkShiftJobs struct {
	workShiftSvc shift.WorkShiftService
	interval     time.Duration
}

func NewWorkShiftJobs(workShiftSvc shift.WorkShiftService, interval time.Duration) *WorkShiftJobs {
	return &WorkShiftJobs{
		workShiftSvc: workShiftSvc,
		interval:     interval,
	}
}

func (j *WorkShiftJobs) RegisterJobs(scheduler *Scheduler) {
	// Polled hourly, executed during the midnight UTC hour.
	scheduler.AddDailyJob("precompute_work_shifts", j.interval, 0, j.PrecomputeWorkShifts)
}

func (j *WorkShiftJobs) PrecomputeWorkShifts(ctx context.Context) error {
	slog.Info("Cron: Starting work shift precompute job")

	if err := j.workShiftSvc.Precompute(ctx); err != nil {
		return err
	}

	slog.Info("Cron: Work shift precompute job finished")
	return nil
}
