// Package auth resolves bearer tokens into authenticated users.
package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature or claims
// validation, or carries a subject that is not a user id.
var ErrInvalidToken = errors.New("auth: invalid token")

// User identifies an authenticated caller.
type User struct {
	ID    uuid.UUID
	Email string
}

// Resolver validates a raw bearer token and returns the user it belongs to.
type Resolver interface {
	ResolveToken(ctx context.Context, token string) (User, error)
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTResolver validates HS256-signed tokens minted by the auth service.
type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

func (r *JWTResolver) ResolveToken(_ context.Context, token string) (User, error) {
	c := &claims{}
	tkn, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid {
		return User{}, ErrInvalidToken
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return User{}, ErrInvalidToken
	}
	return User{ID: id, Email: c.Email}, nil
}
