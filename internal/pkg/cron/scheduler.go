package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a periodically executed task. When AtHourUTC is set, ticks
// outside that UTC hour are skipped, so an hourly interval behaves like a
// daily job without drifting on restarts.
type Job struct {
	Name      string
	Interval  time.Duration
	AtHourUTC *int
	Run       func(ctx context.Context) error
}

// Scheduler drives registered jobs on their intervals until stopped.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job that runs every interval.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.addJob(Job{Name: name, Interval: interval, Run: run})
}

// AddDailyJob registers a job polled every interval but executed only
// during the given UTC hour.
func (s *Scheduler) AddDailyJob(name string, interval time.Duration, hourUTC int, run func(ctx context.Context) error) {
	s.addJob(Job{Name: name, Interval: interval, AtHourUTC: &hourUTC, Run: run})
}

func (s *Scheduler) addJob(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job)
	slog.Info("Cron job registered", "name", job.Name, "interval", job.Interval)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels every running job and waits for them to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(s.ctx, job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(s.ctx, job)
		}
	}
}

func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	if job.AtHourUTC != nil && time.Now().UTC().Hour() != *job.AtHourUTC {
		return nil
	}

	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	err := job.Run(ctx)
	if err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
	return err
}

// RunOnce executes every registered job immediately, ignoring hour
// guards, and returns the first error encountered.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	var first error
	for _, job := range jobs {
		job.AtHourUTC = nil
		if err := s.executeJob(ctx, job); err != nil && first == nil {
			first = err
		}
	}
	return first
}
