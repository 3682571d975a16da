// Package cron runs the background attendance jobs on fixed intervals.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler runs registered jobs until stopped. Each job gets its own
// goroutine: it runs once on Start and then on every tick.
type Scheduler struct {
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers fn to run immediately on Start and every interval
// after that.
func (s *Scheduler) AddJob(name string, every time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: every, run: fn})
	slog.Info("Scheduled job registered", "name", name, "interval", every)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}

	slog.Info("Job scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Job scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(j)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

// execute runs one job, recovering panics so a failing job cannot take
// the scheduler goroutine down with it.
func (s *Scheduler) execute(j job) {
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			slog.Error("Scheduled job panicked", "name", j.name, "panic", p, "duration", time.Since(start))
		}
	}()

	if err := j.run(s.ctx); err != nil {
		slog.Error("Scheduled job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}

	slog.Debug("Scheduled job completed", "name", j.name, "duration", time.Since(start))
}
