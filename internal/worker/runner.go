// Package worker contains the background notifier that warns users before
// their course access expires. It is intentionally decoupled from the HTTP
// layer: nothing in api/ imports the concrete Runner or Job types.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/db"
)

// ─── RUNNER ───────────────────────────────────────────────────────────────────

// RunnerConfig holds tuning parameters for the Runner. All fields have
// sensible defaults if zero-valued; call DefaultRunnerConfig() to get them.
type RunnerConfig struct {
	// Workers is the number of concurrent job goroutines. Default: 3.
	Workers int

	// PollInterval is how often the poller checks ListExpiringEnrollments
	// for enrollments entering the warning window. Default: 15m.
	PollInterval time.Duration

	// WarnWindow is how far ahead of expiry the notice goes out.
	// Default: 72h.
	WarnWindow time.Duration

	// JobTimeout is the per-job context deadline. Default: 30s.
	JobTimeout time.Duration

	// MaxRetries is the number of times a job is retried before it is left
	// for the next poll cycle. Default: 3.
	MaxRetries int
}

// DefaultRunnerConfig returns safe production defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Workers:      3,
		PollInterval: 15 * time.Minute,
		WarnWindow:   72 * time.Hour,
		JobTimeout:   30 * time.Second,
		MaxRetries:   3,
	}
}

// Runner manages a pool of worker goroutines fed by a periodic database poll.
// Because notification state lives in the course_enrollments row, a crashed
// or restarted process simply picks unnotified rows up again on the next
// poll — there is no separate queue to recover.
type Runner struct {
	job    *Job
	q      db.Querier
	cfg    RunnerConfig
	logger *slog.Logger

	queue chan uuid.UUID
	wg    sync.WaitGroup
}

// NewRunner constructs a Runner. Call Start() to begin processing.
func NewRunner(job *Job, q db.Querier, cfg RunnerConfig, logger *slog.Logger) *Runner {
	def := DefaultRunnerConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.WarnWindow <= 0 {
		cfg.WarnWindow = def.WarnWindow
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = def.JobTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}

	return &Runner{
		job:    job,
		q:      q,
		cfg:    cfg,
		logger: logger,
		// Buffer = Workers*2 so a poll burst never blocks the poller.
		queue: make(chan uuid.UUID, cfg.Workers*2),
	}
}

// Start launches the worker pool and the poller. It blocks until ctx is
// cancelled. Call it in a goroutine from main:
//
//	go runner.Start(ctx)
func (r *Runner) Start(ctx context.Context) {
	r.logger.Info("worker: starting",
		"workers", r.cfg.Workers,
		"poll_interval", r.cfg.PollInterval,
		"warn_window", r.cfg.WarnWindow,
	)

	for i := 0; i < r.cfg.Workers; i++ {
		r.wg.Add(1)
		go r.work(ctx, i)
	}

	r.wg.Add(1)
	go r.poll(ctx)

	r.wg.Wait()
	r.logger.Info("worker: stopped")
}

// work is the inner loop for each worker goroutine.
func (r *Runner) work(ctx context.Context, id int) {
	defer r.wg.Done()
	log := r.logger.With("worker_id", id)
	log.Info("worker: goroutine started")

	for {
		select {
		case <-ctx.Done():
			log.Info("worker: goroutine stopping")
			return
		case enrollmentID := <-r.queue:
			r.runWithRetry(ctx, enrollmentID, log)
		}
	}
}

// poll queries the database on PollInterval for enrollments entering the
// warning window that have not been notified yet.
func (r *Runner) poll(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	// Run once immediately on startup.
	r.pollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.pollOnce(ctx)
		}
	}
}

func (r *Runner) pollOnce(ctx context.Context) {
	enrollments, err := r.q.ListExpiringEnrollments(ctx, time.Now().Add(r.cfg.WarnWindow))
	if err != nil {
		r.logger.Error("worker: poll failed", "error", err)
		return
	}
	for _, e := range enrollments {
		select {
		case r.queue <- e.ID:
			r.logger.Debug("worker: poller enqueued enrollment", "enrollment_id", e.ID)
		default:
			// Queue full — will be picked up next poll cycle.
		}
	}
}

// runWithRetry executes the job up to MaxRetries times. After exhausting
// retries the enrollment stays unnotified, so the next poll cycle tries again.
func (r *Runner) runWithRetry(ctx context.Context, enrollmentID uuid.UUID, log *slog.Logger) {
	var lastErr error

	for attempt := 1; attempt <= r.cfg.MaxRetries; attempt++ {
		jobCtx, cancel := context.WithTimeout(ctx, r.cfg.JobTimeout)
		lastErr = r.job.Run(jobCtx, enrollmentID)
		cancel()

		if lastErr == nil {
			log.Info("worker: job completed", "enrollment_id", enrollmentID, "attempt", attempt)
			return
		}

		log.Warn("worker: job attempt failed",
			"enrollment_id", enrollmentID,
			"attempt", attempt,
			"max", r.cfg.MaxRetries,
			"error", lastErr,
		)

		if attempt < r.cfg.MaxRetries {
			// Exponential back-off: 2s, 4s, 8s …
			backoff := time.Duration(1<<attempt) * time.Second
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
		}
	}

	log.Error("worker: job failed, deferring to next poll", "enrollment_id", enrollmentID, "error", lastErr)
}
