package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/studyforge/studyforge-backend/internal/auth"
)

const testSecret = "test-secret-key"

func mintToken(t *testing.T, secret string, method jwt.SigningMethod, sub, email string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestResolveToken_ValidToken(t *testing.T) {
	r := auth.NewJWTResolver(testSecret)
	userID := uuid.New()

	token := mintToken(t, testSecret, jwt.SigningMethodHS256, userID.String(), "a@example.com", time.Hour)

	user, err := r.ResolveToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if user.ID != userID {
		t.Errorf("id: got %s, want %s", user.ID, userID)
	}
	if user.Email != "a@example.com" {
		t.Errorf("email: got %q", user.Email)
	}
}

func TestResolveToken_WrongSecret(t *testing.T) {
	r := auth.NewJWTResolver(testSecret)
	token := mintToken(t, "other-secret", jwt.SigningMethodHS256, uuid.NewString(), "a@example.com", time.Hour)

	_, err := r.ResolveToken(context.Background(), token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestResolveToken_ExpiredToken(t *testing.T) {
	r := auth.NewJWTResolver(testSecret)
	token := mintToken(t, testSecret, jwt.SigningMethodHS256, uuid.NewString(), "a@example.com", -time.Hour)

	_, err := r.ResolveToken(context.Background(), token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestResolveToken_NonUUIDSubject(t *testing.T) {
	r := auth.NewJWTResolver(testSecret)
	token := mintToken(t, testSecret, jwt.SigningMethodHS256, "not-a-uuid", "a@example.com", time.Hour)

	_, err := r.ResolveToken(context.Background(), token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestResolveToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	r := auth.NewJWTResolver(testSecret)

	// alg=none style tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = r.ResolveToken(context.Background(), signed)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestResolveToken_Garbage(t *testing.T) {
	r := auth.NewJWTResolver(testSecret)
	_, err := r.ResolveToken(context.Background(), "not.a.jwt")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}
