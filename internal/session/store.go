// Package session holds the authenticated dashboard identity. At most one
// identity is logged in at a time; it is persisted as a single key-value row
// so a restart restores the session without re-checking credentials.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"content-dashboard/internal/domain"
	"content-dashboard/internal/logger"
	"content-dashboard/internal/metrics"
)

// SharedSecret is the single secret every identity authenticates with. This
// is a demo affordance carried over from the seed data, not a security
// mechanism.
const SharedSecret = "password"

// sessionKey is the key under which the current identity is persisted.
const sessionKey = "dashboardUser"

// Store manages the current session against a fixed identity set.
type Store struct {
	db    *sql.DB
	users []domain.User

	mu      sync.RWMutex
	current *domain.User
}

// New creates a session store over the given database and identity set,
// initializes the schema, and restores a previously persisted session if one
// exists. A stored identity that fails to decode is discarded, not an error.
func New(ctx context.Context, db *sql.DB, users []domain.User) (*Store, error) {
	s := &Store{db: db, users: users}

	if err := s.createSchema(ctx); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := s.restore(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return s, nil
}

func (s *Store) createSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS session (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// restore loads the persisted identity, if any. The stored value is trusted
// as-is; the secret is not re-checked.
func (s *Store) restore(ctx context.Context) error {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM session WHERE key = ?", sessionKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		logger.Warn("Discarding malformed persisted session")
		return nil
	}

	s.current = &user
	return nil
}

// Login authenticates an (email, secret) pair against the fixed identity
// set. Wrong credentials are a normal false outcome, never an error; errors
// are reserved for persistence failures. On success the identity is
// persisted and becomes the current session.
func (s *Store) Login(ctx context.Context, email, secret string) (*domain.User, bool, error) {
	var found *domain.User
	for i := range s.users {
		if s.users[i].Email == email {
			found = &s.users[i]
			break
		}
	}
	if found == nil || secret != SharedSecret {
		metrics.ObserveLogin(false)
		return nil, false, nil
	}

	value, err := json.Marshal(found)
	if err != nil {
		return nil, false, fmt.Errorf("encode session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO session (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		sessionKey, string(value),
	)
	if err != nil {
		return nil, false, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	user := *found
	s.current = &user
	s.mu.Unlock()

	metrics.ObserveLogin(true)
	return &user, true, nil
}

// Logout clears the persisted identity and returns to the logged-out state
// unconditionally.
func (s *Store) Logout(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE key = ?", sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the logged-in identity, or nil when logged out.
func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Authenticate reports whether the token belongs to the current session.
func (s *Store) Authenticate(token string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || token == "" || s.current.Token != token {
		return nil, false
	}
	user := *s.current
	return &user, true
}
