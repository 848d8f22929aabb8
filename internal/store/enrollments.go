package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// FulfillPurchaseParams groups the fields a successful payment writes when it
// turns into course access.
type FulfillPurchaseParams struct {
	UserID       uuid.UUID
	CourseID     uuid.UUID
	UserEmail    string
	DaysOfAccess int32
	IsRenewal    bool
}

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrAlreadyEnrolled is returned when a user tries to claim free access to a
// course they already hold an active enrollment for.
var ErrAlreadyEnrolled = errors.New("store: user already enrolled in course")

// ErrNoEnrollment is returned when a renewal refers to a course the user has
// never been enrolled in. The checkout handler maps this to a parameter error.
var ErrNoEnrollment = errors.New("store: no enrollment to renew")

// ─── METHODS ─────────────────────────────────────────────────────────────────

// EnrollFree grants immediate access to a zero-price course.
//
// Race scenario without the transactional guard:
//  1. Two browser tabs submit checkout for the same free course.
//  2. Both read, see no enrollment, and both insert.
//  3. The user ends up with two overlapping enrollment rows.
//
// Under serializable isolation the second transaction observes the first
// commit and hits the already-enrolled check instead.
func (s *Store) EnrollFree(ctx context.Context, userID, courseID uuid.UUID, userEmail string, daysOfAccess int32) (db.CourseEnrollment, error) {
	var enrollment db.CourseEnrollment

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		_, err := q.GetActiveEnrollment(ctx, db.GetActiveEnrollmentParams{
			UserID:   userID,
			CourseID: courseID,
		})
		if err == nil {
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("EnrollFree: get active enrollment: %w", err)
		}

		created, err := q.CreateEnrollment(ctx, db.CreateEnrollmentParams{
			UserID:    userID,
			CourseID:  courseID,
			UserEmail: userEmail,
			ExpiresAt: accessWindow(time.Now(), daysOfAccess),
		})
		if err != nil {
			return fmt.Errorf("EnrollFree: create enrollment: %w", err)
		}

		enrollment = created
		return nil
	})
	if err != nil {
		return db.CourseEnrollment{}, err
	}
	return enrollment, nil
}

// RenewFreeEnrollment refreshes the most recent enrollment for a zero-price
// course: status back to active, a fresh access window counted from now,
// renewal_count incremented. Returns ErrNoEnrollment when the user was never
// enrolled.
func (s *Store) RenewFreeEnrollment(ctx context.Context, userID, courseID uuid.UUID, daysOfAccess int32) (db.CourseEnrollment, error) {
	var enrollment db.CourseEnrollment

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		existing, err := q.GetEnrollment(ctx, db.GetEnrollmentParams{
			UserID:   userID,
			CourseID: courseID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoEnrollment
		}
		if err != nil {
			return fmt.Errorf("RenewFreeEnrollment: get enrollment: %w", err)
		}

		renewed, err := q.RenewEnrollment(ctx, db.RenewEnrollmentParams{
			ID:        existing.ID,
			ExpiresAt: accessWindow(time.Now(), daysOfAccess),
		})
		if err != nil {
			return fmt.Errorf("RenewFreeEnrollment: renew enrollment: %w", err)
		}
		enrollment = renewed
		return nil
	})
	if err != nil {
		return db.CourseEnrollment{}, err
	}
	return enrollment, nil
}

// FulfillPurchase converts a confirmed payment into course access.
//
// For a renewal the most recent enrollment row is extended: if it is still
// active the new window starts at the current expiry, otherwise at now. A
// renewal with no prior enrollment returns ErrNoEnrollment.
//
// For a first purchase an existing active enrollment makes the call a no-op
// returning the current row, so webhook redelivery cannot double-enroll.
func (s *Store) FulfillPurchase(ctx context.Context, p FulfillPurchaseParams) (db.CourseEnrollment, error) {
	var enrollment db.CourseEnrollment

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		if p.IsRenewal {
			existing, err := q.GetEnrollment(ctx, db.GetEnrollmentParams{
				UserID:   p.UserID,
				CourseID: p.CourseID,
			})
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoEnrollment
			}
			if err != nil {
				return fmt.Errorf("FulfillPurchase: get enrollment: %w", err)
			}

			from := time.Now()
			if existing.Status == db.EnrollmentStatusActive && existing.ExpiresAt.After(from) {
				from = existing.ExpiresAt
			}
			renewed, err := q.RenewEnrollment(ctx, db.RenewEnrollmentParams{
				ID:        existing.ID,
				ExpiresAt: accessWindow(from, p.DaysOfAccess),
			})
			if err != nil {
				return fmt.Errorf("FulfillPurchase: renew enrollment: %w", err)
			}
			enrollment = renewed
			return nil
		}

		existing, err := q.GetActiveEnrollment(ctx, db.GetActiveEnrollmentParams{
			UserID:   p.UserID,
			CourseID: p.CourseID,
		})
		if err == nil {
			// Duplicate fulfilment (webhook retry): keep the current access.
			enrollment = existing
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("FulfillPurchase: get active enrollment: %w", err)
		}

		created, err := q.CreateEnrollment(ctx, db.CreateEnrollmentParams{
			UserID:    p.UserID,
			CourseID:  p.CourseID,
			UserEmail: p.UserEmail,
			ExpiresAt: accessWindow(time.Now(), p.DaysOfAccess),
		})
		if err != nil {
			return fmt.Errorf("FulfillPurchase: create enrollment: %w", err)
		}
		enrollment = created
		return nil
	})
	if err != nil {
		return db.CourseEnrollment{}, err
	}
	return enrollment, nil
}

// accessWindow computes the expiry for daysOfAccess starting at from.
func accessWindow(from time.Time, daysOfAccess int32) time.Time {
	return from.Add(time.Duration(daysOfAccess) * 24 * time.Hour)
}
