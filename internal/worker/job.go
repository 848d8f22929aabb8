package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/email"
)

// Job holds the dependencies for the expiry notification pipeline. Each step
// is a separate method so they can be tested independently and so the Run
// method reads like a spec.
type Job struct {
	q      db.Querier
	mailer email.Sender
	logger *slog.Logger
}

// NewJob constructs a Job with all required dependencies.
func NewJob(q db.Querier, mailer email.Sender, logger *slog.Logger) *Job {
	return &Job{
		q:      q,
		mailer: mailer,
		logger: logger,
	}
}

// Run executes the notification pipeline for a single enrollment:
//
//  1. Re-load the enrollment — another worker (or a renewal) may have
//     handled it since the poller queued it.
//  2. Load the course for the email subject.
//  3. Send the expiry notice.
//  4. Mark the enrollment notified so the poller stops returning it.
//
// Any error is returned to the Runner, which will retry up to MaxRetries
// times. An already-notified or renewed enrollment is a clean no-op.
func (j *Job) Run(ctx context.Context, enrollmentID uuid.UUID) error {
	log := j.logger.With("enrollment_id", enrollmentID)

	// ── 1. Re-check state under the latest committed data ─────────────────────
	enrollment, err := j.q.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return fmt.Errorf("job: get enrollment: %w", err)
	}

	if enrollment.NotificationSent {
		log.Debug("job: already notified, skipping")
		return nil
	}
	if enrollment.Status != db.EnrollmentStatusActive {
		log.Debug("job: enrollment no longer active, skipping", "status", enrollment.Status)
		return nil
	}

	// ── 2. Load the course title ──────────────────────────────────────────────
	course, err := j.q.GetCourseByID(ctx, enrollment.CourseID)
	if err != nil {
		return fmt.Errorf("job: get course: %w", err)
	}

	// ── 3. Send the expiry notice ─────────────────────────────────────────────
	if enrollment.UserEmail == "" {
		// Nothing to send to. Mark notified anyway so the poller does not
		// requeue this row forever.
		log.Warn("job: enrollment has no email address, marking without sending")
	} else {
		if err := j.mailer.SendExpiryNotice(ctx, email.ExpiryNoticeParams{
			To:          enrollment.UserEmail,
			CourseTitle: course.Title,
			ExpiresAt:   enrollment.ExpiresAt,
		}); err != nil {
			return fmt.Errorf("job: send expiry notice: %w", err)
		}
	}

	// ── 4. Mark notified ──────────────────────────────────────────────────────
	if _, err := j.q.MarkEnrollmentNotified(ctx, enrollmentID); err != nil {
		// The email went out but the flag write failed — retrying the job may
		// send a duplicate notice, which is preferable to never flagging.
		return fmt.Errorf("job: mark notified: %w", err)
	}

	log.Info("job: expiry notice sent",
		"course_id", enrollment.CourseID,
		"expires_at", enrollment.ExpiresAt,
	)
	return nil
}
