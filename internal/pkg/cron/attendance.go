package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/warelogix/warehouse-backend-go/internal/pkg/redislock"
	"github.com/warelogix/warehouse-backend-go/internal/pkg/workday"
)

// AutoCloser closes every attendance record still open for the given day.
type AutoCloser interface {
	AutoCloseDay(ctx context.Context) (int, error)
}

type AttendanceJobs struct {
	attendanceSvc AutoCloser
	policy        workday.Policy
	locker        *redislock.Locker
	now           func() time.Time
}

func NewAttendanceJobs(attendanceSvc AutoCloser, policy workday.Policy, locker *redislock.Locker) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		policy:        policy,
		locker:        locker,
		now:           time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_open_attendances", 1*time.Hour, j.AutoCloseOpenAttendances)
}

func (j *AttendanceJobs) AutoCloseOpenAttendances(ctx context.Context) error {
	// Only run once the official end of work has passed
	now := j.now()
	if now.Before(j.policy.EndOfWork(now)) {
		return nil
	}

	lockKey := fmt.Sprintf("attendance:auto_close:%s", now.Format("2006-01-02"))
	if !j.locker.Acquire(ctx, lockKey, 23*time.Hour) {
		slog.Debug("Cron: auto-close already claimed by another instance")
		return nil
	}

	slog.Info("Cron: Starting auto-close open attendances job")

	closed, err := j.attendanceSvc.AutoCloseDay(ctx)
	if err != nil {
		// Give the next tick a chance to retry; the sweep is idempotent
		j.locker.Release(ctx, lockKey)
		return fmt.Errorf("failed to auto-close attendances: %w", err)
	}

	slog.Info("Cron: Auto-closed open attendances", "count", closed)
	return nil
}
