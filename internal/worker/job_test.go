package worker_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/email"
	"github.com/studyforge/studyforge-backend/internal/worker"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

type stubQuerier struct {
	db.Querier // embedded to panic on unimplemented methods

	enrollments map[uuid.UUID]db.CourseEnrollment
	courses     map[uuid.UUID]db.Course
	notified    []uuid.UUID
	markErr     error
}

func newStubQuerier() *stubQuerier {
	return &stubQuerier{
		enrollments: make(map[uuid.UUID]db.CourseEnrollment),
		courses:     make(map[uuid.UUID]db.Course),
	}
}

func (q *stubQuerier) GetEnrollmentByID(_ context.Context, id uuid.UUID) (db.CourseEnrollment, error) {
	e, ok := q.enrollments[id]
	if !ok {
		return db.CourseEnrollment{}, sql.ErrNoRows
	}
	return e, nil
}

func (q *stubQuerier) GetCourseByID(_ context.Context, id uuid.UUID) (db.Course, error) {
	c, ok := q.courses[id]
	if !ok {
		return db.Course{}, sql.ErrNoRows
	}
	return c, nil
}

func (q *stubQuerier) MarkEnrollmentNotified(_ context.Context, id uuid.UUID) (db.CourseEnrollment, error) {
	if q.markErr != nil {
		return db.CourseEnrollment{}, q.markErr
	}
	q.notified = append(q.notified, id)
	e := q.enrollments[id]
	e.NotificationSent = true
	q.enrollments[id] = e
	return e, nil
}

type stubMailer struct {
	notices []email.ExpiryNoticeParams
	err     error
}

func (m *stubMailer) SendReceipt(_ context.Context, _ email.ReceiptParams) error { return nil }

func (m *stubMailer) SendExpiryNotice(_ context.Context, p email.ExpiryNoticeParams) error {
	m.notices = append(m.notices, p)
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedEnrollment(q *stubQuerier, status db.EnrollmentStatus, notified bool, userEmail string) (uuid.UUID, uuid.UUID) {
	courseID := uuid.New()
	q.courses[courseID] = db.Course{ID: courseID, Title: "Algebra I"}

	enrollmentID := uuid.New()
	q.enrollments[enrollmentID] = db.CourseEnrollment{
		ID:               enrollmentID,
		UserID:           uuid.New(),
		CourseID:         courseID,
		UserEmail:        userEmail,
		Status:           status,
		ExpiresAt:        time.Now().Add(48 * time.Hour),
		NotificationSent: notified,
	}
	return enrollmentID, courseID
}

// ─── Run ──────────────────────────────────────────────────────────────────────

func TestJobRun_SendsNoticeAndMarksNotified(t *testing.T) {
	q := newStubQuerier()
	m := &stubMailer{}
	job := worker.NewJob(q, m, discardLogger())

	enrollmentID, _ := seedEnrollment(q, db.EnrollmentStatusActive, false, "student@example.com")

	if err := job.Run(context.Background(), enrollmentID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(m.notices) != 1 {
		t.Fatalf("notices sent: %d", len(m.notices))
	}
	notice := m.notices[0]
	if notice.To != "student@example.com" || notice.CourseTitle != "Algebra I" {
		t.Errorf("notice: %+v", notice)
	}
	if len(q.notified) != 1 || q.notified[0] != enrollmentID {
		t.Errorf("notified: %v", q.notified)
	}
}

func TestJobRun_AlreadyNotifiedIsNoOp(t *testing.T) {
	q := newStubQuerier()
	m := &stubMailer{}
	job := worker.NewJob(q, m, discardLogger())

	enrollmentID, _ := seedEnrollment(q, db.EnrollmentStatusActive, true, "student@example.com")

	if err := job.Run(context.Background(), enrollmentID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(m.notices) != 0 {
		t.Error("already-notified enrollment must not be emailed again")
	}
}

func TestJobRun_InactiveEnrollmentIsNoOp(t *testing.T) {
	q := newStubQuerier()
	m := &stubMailer{}
	job := worker.NewJob(q, m, discardLogger())

	enrollmentID, _ := seedEnrollment(q, db.EnrollmentStatusExpired, false, "student@example.com")

	if err := job.Run(context.Background(), enrollmentID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(m.notices) != 0 {
		t.Error("inactive enrollment must not be emailed")
	}
}

func TestJobRun_MissingEmailMarksWithoutSending(t *testing.T) {
	q := newStubQuerier()
	m := &stubMailer{}
	job := worker.NewJob(q, m, discardLogger())

	enrollmentID, _ := seedEnrollment(q, db.EnrollmentStatusActive, false, "")

	if err := job.Run(context.Background(), enrollmentID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(m.notices) != 0 {
		t.Error("no notice should be sent without an address")
	}
	// Still flagged so the poller stops returning the row.
	if len(q.notified) != 1 {
		t.Errorf("notified: %v", q.notified)
	}
}

func TestJobRun_SendFailureReturnsErrorForRetry(t *testing.T) {
	q := newStubQuerier()
	m := &stubMailer{err: errors.New("resend down")}
	job := worker.NewJob(q, m, discardLogger())

	enrollmentID, _ := seedEnrollment(q, db.EnrollmentStatusActive, false, "student@example.com")

	if err := job.Run(context.Background(), enrollmentID); err == nil {
		t.Fatal("expected error when the send fails")
	}
	if len(q.notified) != 0 {
		t.Error("a failed send must not mark the enrollment notified")
	}
}

func TestJobRun_MarkFailureReturnsError(t *testing.T) {
	q := newStubQuerier()
	q.markErr = errors.New("deadlock")
	m := &stubMailer{}
	job := worker.NewJob(q, m, discardLogger())

	enrollmentID, _ := seedEnrollment(q, db.EnrollmentStatusActive, false, "student@example.com")

	if err := job.Run(context.Background(), enrollmentID); err == nil {
		t.Fatal("expected error when marking fails")
	}
}
