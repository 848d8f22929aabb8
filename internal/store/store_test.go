package store_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/studyforge/studyforge-backend/internal/db"
	"github.com/studyforge/studyforge-backend/internal/store"
)

// ─── TEST INFRASTRUCTURE ──────────────────────────────────────────────────────

// openTestDB returns a *sql.DB from DATABASE_URL. Skips if the env var is
// not set so the test suite still passes in CI without a Postgres instance.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set — skipping store integration tests")
	}
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := pool.PingContext(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

// seedCourse inserts a course and registers cleanup for it and any
// enrollments created against it.
func seedCourse(t *testing.T, ctx context.Context, pool *sql.DB, price string, days int32) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.ExecContext(ctx,
		`INSERT INTO courses (id, title, price, days_of_access) VALUES ($1, $2, $3, $4)`,
		id, "Test Course "+t.Name(), price, days)
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM course_enrollments WHERE course_id=$1", id)
		_, _ = pool.ExecContext(ctx, "DELETE FROM courses WHERE id=$1", id)
	})
	return id
}

// seedSubject inserts a subject for collection tests.
func seedSubject(t *testing.T, ctx context.Context, pool *sql.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.ExecContext(ctx,
		`INSERT INTO subjects (id, name, slug, position) VALUES ($1, $2, $3, 0)`,
		id, "Test "+t.Name(), fmt.Sprintf("test-%s-%s", t.Name(), id.String()[:8]))
	if err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM collections WHERE subject_id=$1", id)
		_, _ = pool.ExecContext(ctx, "DELETE FROM subjects WHERE id=$1", id)
	})
	return id
}

const testEmail = "student@example.com"

// ─── EnrollFree ───────────────────────────────────────────────────────────────

func TestEnrollFree_CreatesActiveEnrollment(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "0", 30)
	userID := uuid.New()

	enrollment, err := st.EnrollFree(ctx, userID, courseID, testEmail, 30)
	if err != nil {
		t.Fatalf("EnrollFree: %v", err)
	}
	if enrollment.Status != db.EnrollmentStatusActive {
		t.Errorf("status: got %s, want active", enrollment.Status)
	}
	if enrollment.UserEmail != testEmail {
		t.Errorf("user email: got %q", enrollment.UserEmail)
	}
	// 30 days of access, counted from now.
	want := time.Now().Add(30 * 24 * time.Hour)
	if diff := enrollment.ExpiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expires_at: got %s, want ~%s", enrollment.ExpiresAt, want)
	}
}

func TestEnrollFree_SecondCallReturnsErrAlreadyEnrolled(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "0", 30)
	userID := uuid.New()

	if _, err := st.EnrollFree(ctx, userID, courseID, testEmail, 30); err != nil {
		t.Fatalf("first call: %v", err)
	}

	_, err := st.EnrollFree(ctx, userID, courseID, testEmail, 30)
	if !errors.Is(err, store.ErrAlreadyEnrolled) {
		t.Errorf("expected ErrAlreadyEnrolled, got: %v", err)
	}
}

// ─── RenewFreeEnrollment ──────────────────────────────────────────────────────

func TestRenewFreeEnrollment_NoEnrollmentReturnsSentinel(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "0", 30)

	_, err := st.RenewFreeEnrollment(ctx, uuid.New(), courseID, 30)
	if !errors.Is(err, store.ErrNoEnrollment) {
		t.Errorf("expected ErrNoEnrollment, got: %v", err)
	}
}

func TestRenewFreeEnrollment_ResetsWindowFromNow(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "0", 30)
	userID := uuid.New()

	first, err := st.EnrollFree(ctx, userID, courseID, testEmail, 30)
	if err != nil {
		t.Fatalf("EnrollFree: %v", err)
	}

	renewed, err := st.RenewFreeEnrollment(ctx, userID, courseID, 30)
	if err != nil {
		t.Fatalf("RenewFreeEnrollment: %v", err)
	}
	if renewed.ID != first.ID {
		t.Error("renewal must update the existing row, not create a new one")
	}
	if renewed.RenewalCount != first.RenewalCount+1 {
		t.Errorf("renewal_count: got %d, want %d", renewed.RenewalCount, first.RenewalCount+1)
	}
	if !renewed.RenewedAt.Valid {
		t.Error("expected renewed_at to be set")
	}
	// Renewal resets the window from now, it does not stack onto the old expiry.
	want := time.Now().Add(30 * 24 * time.Hour)
	if diff := renewed.ExpiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expires_at: got %s, want ~%s", renewed.ExpiresAt, want)
	}
}

// ─── FulfillPurchase ──────────────────────────────────────────────────────────

func TestFulfillPurchase_CreatesEnrollmentOnFirstPurchase(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "49.99", 90)
	userID := uuid.New()

	enrollment, err := st.FulfillPurchase(ctx, store.FulfillPurchaseParams{
		UserID:       userID,
		CourseID:     courseID,
		UserEmail:    testEmail,
		DaysOfAccess: 90,
	})
	if err != nil {
		t.Fatalf("FulfillPurchase: %v", err)
	}
	if enrollment.Status != db.EnrollmentStatusActive {
		t.Errorf("status: got %s", enrollment.Status)
	}
}

func TestFulfillPurchase_RedeliveryKeepsExistingRow(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "49.99", 90)
	userID := uuid.New()

	params := store.FulfillPurchaseParams{
		UserID:       userID,
		CourseID:     courseID,
		UserEmail:    testEmail,
		DaysOfAccess: 90,
	}

	first, err := st.FulfillPurchase(ctx, params)
	if err != nil {
		t.Fatalf("first delivery: %v", err)
	}

	// A webhook retry must be a no-op, not a second enrollment row.
	second, err := st.FulfillPurchase(ctx, params)
	if err != nil {
		t.Fatalf("second delivery: %v", err)
	}
	if second.ID != first.ID {
		t.Error("redelivery created a second enrollment")
	}
	if !second.ExpiresAt.Equal(first.ExpiresAt) {
		t.Errorf("redelivery moved expiry: %s -> %s", first.ExpiresAt, second.ExpiresAt)
	}
}

func TestFulfillPurchase_RenewalExtendsFromCurrentExpiry(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "49.99", 90)
	userID := uuid.New()

	first, err := st.FulfillPurchase(ctx, store.FulfillPurchaseParams{
		UserID:       userID,
		CourseID:     courseID,
		UserEmail:    testEmail,
		DaysOfAccess: 90,
	})
	if err != nil {
		t.Fatalf("initial purchase: %v", err)
	}

	renewed, err := st.FulfillPurchase(ctx, store.FulfillPurchaseParams{
		UserID:       userID,
		CourseID:     courseID,
		UserEmail:    testEmail,
		DaysOfAccess: 90,
		IsRenewal:    true,
	})
	if err != nil {
		t.Fatalf("renewal: %v", err)
	}

	// A paid renewal of a still-active enrollment stacks onto the current
	// expiry so the user never loses time they already paid for.
	want := first.ExpiresAt.Add(90 * 24 * time.Hour)
	if diff := renewed.ExpiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expires_at: got %s, want ~%s", renewed.ExpiresAt, want)
	}
}

func TestFulfillPurchase_RenewalWithoutEnrollmentReturnsSentinel(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	courseID := seedCourse(t, ctx, pool, "49.99", 90)

	_, err := st.FulfillPurchase(ctx, store.FulfillPurchaseParams{
		UserID:       uuid.New(),
		CourseID:     courseID,
		UserEmail:    testEmail,
		DaysOfAccess: 90,
		IsRenewal:    true,
	})
	if !errors.Is(err, store.ErrNoEnrollment) {
		t.Errorf("expected ErrNoEnrollment, got: %v", err)
	}
}

// ─── CreateCollection ─────────────────────────────────────────────────────────

func TestCreateCollection_EnforcesLimit(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	subjectID := seedSubject(t, ctx, pool)
	userID := uuid.New()
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM collections WHERE user_id=$1", userID)
	})

	params := func(title string) db.CreateCollectionParams {
		return db.CreateCollectionParams{UserID: userID, SubjectID: subjectID, Title: title}
	}

	if _, err := st.CreateCollection(ctx, params("One"), 2); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := st.CreateCollection(ctx, params("Two"), 2); err != nil {
		t.Fatalf("second: %v", err)
	}

	_, err := st.CreateCollection(ctx, params("Three"), 2)
	if !errors.Is(err, store.ErrCollectionLimit) {
		t.Errorf("expected ErrCollectionLimit, got: %v", err)
	}
}

func TestCreateCollection_ZeroLimitMeansUnlimited(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	subjectID := seedSubject(t, ctx, pool)
	userID := uuid.New()
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM collections WHERE user_id=$1", userID)
	})

	for i := 0; i < 5; i++ {
		_, err := st.CreateCollection(ctx, db.CreateCollectionParams{
			UserID:    userID,
			SubjectID: subjectID,
			Title:     fmt.Sprintf("Collection %d", i),
		}, 0)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
}
