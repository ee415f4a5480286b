// Package session keeps the signed-in user identifier in a scoped key-value
// store. Only the user id is persisted; tokens stay in memory.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/fridgechef/internal/types"
)

// UserIDKey is the single key written by this package
const UserIDKey = "userId"

var (
	// ErrNotFound is returned by a Store when the key is absent
	ErrNotFound = errors.New("key not found")
	// ErrNoSession is returned when no user is signed in
	ErrNoSession = errors.New("no active session")
)

// Store is scoped key-value storage
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Session is the signed-in user. Credential is empty when the session was
// restored from storage without a token.
type Session struct {
	UserID     string
	Credential types.Credential
}

// Current returns the stored user id
func Current(ctx context.Context, s Store) (string, error) {
	id, err := s.Get(ctx, UserIDKey)
	if errors.Is(err, ErrNotFound) || (err == nil && id == "") {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return id, nil
}

// Save stores userID as the current session
func Save(ctx context.Context, s Store, userID string) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if err := s.Set(ctx, UserIDKey, userID); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the current session. Clearing an empty session is not an error.
func Clear(ctx context.Context, s Store) error {
	if err := s.Delete(ctx, UserIDKey); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
