package workers

import (
	"context"
	"time"

	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/repositories"
)

// JobWorker closes stale active postings in the background. A posting left
// active longer than maxAge without being closed by its owner stops
// accepting submissions.
type JobWorker struct {
	jobRepo  repositories.JobRepository
	maxAge   time.Duration
	interval time.Duration
}

func NewJobWorker(jobRepo repositories.JobRepository, autoCloseDays int) *JobWorker {
	return &JobWorker{
		jobRepo:  jobRepo,
		maxAge:   time.Duration(autoCloseDays) * 24 * time.Hour,
		interval: time.Hour,
	}
}

// Run blocks until ctx is cancelled. One sweep runs immediately on start.
func (w *JobWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Job worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *JobWorker) sweep() {
	cutoff := time.Now().Add(-w.maxAge)
	closed, err := w.jobRepo.CloseOlderThan(cutoff)
	if err != nil {
		logger.WithError(err).Error("Job auto-close sweep failed")
		return
	}
	if closed > 0 {
		logger.Info("Auto-closed stale jobs", "count", closed, "cutoff", cutoff)
	}
}
