// Package session holds the authenticated identity between requests. The
// token travels in a cookie; absence of a loadable session is the sole
// authentication gate for protected endpoints.
package session

import (
	"context"
	"errors"

	"festfront/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Session is the raw login response kept for the lifetime of the browser
// session.
type Session struct {
	RollNumber string `json:"rollNumber"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func FromStudent(s models.Student) Session {
	return Session{
		RollNumber: s.RollNumber,
		Name:       s.Name,
		Email:      s.Email,
	}
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	// Save stores the session and returns an opaque token for the cookie.
	Save(ctx context.Context, s Session) (string, error)
	// Load resolves a token, ErrNotFound when absent or expired.
	Load(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
