// Package session implements the client-only admin session. It gates the
// admin commands behind one hard-coded demo credential pair and persists the
// session record locally. This is a UI-gating convenience, not a security
// boundary: nothing is verified server-side.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"shophub/internal/logging"
	"shophub/internal/state"
	"shophub/internal/types"
)

// StorageKey is the state-store record holding the admin session.
const StorageKey = "admin_auth"

// Demo credential pair. The only accepted sign-in.
const (
	DemoEmail    = "admin@shophub.com"
	demoPassword = "admin123"
	demoName     = "Admin User"
)

// signInDelay imitates a round trip so the login flow feels like a real
// credential check.
const signInDelay = 500 * time.Millisecond

// ErrInvalidCredentials is returned for any email/password pair other than
// the demo one.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Store holds the current admin session. Constructed once at startup and
// passed to consumers; safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	user  *types.AdminUser
	state *state.Store
}

// NewStore restores any persisted session. Corrupt session records are
// discarded silently.
func NewStore(st *state.Store) *Store {
	s := &Store{state: st}

	var user types.AdminUser
	switch st.Load(StorageKey, &user) {
	case state.Restored:
		s.user = &user
		logging.Session("restored session for %s", user.Email)
	case state.Corrupt:
		logging.SessionWarn("persisted session was corrupt, discarding")
		if err := st.Delete(StorageKey); err != nil {
			logging.SessionWarn("failed to delete corrupt session: %v", err)
		}
	}
	return s
}

// SignIn succeeds only when both fields exactly match the demo credentials.
// The artificial delay is context-aware so a cancelled command aborts early.
// On success the session is persisted; on mismatch nothing is stored.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	select {
	case <-time.After(signInDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	if email != DemoEmail || password != demoPassword {
		logging.SessionWarn("rejected sign-in for %q", email)
		return ErrInvalidCredentials
	}

	user := types.AdminUser{Email: email, Name: demoName}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := s.state.Save(StorageKey, user); err != nil {
		// Best-effort persistence: the in-memory session still stands.
		logging.SessionWarn("failed to persist session: %v", err)
	}
	logging.Session("signed in as %s", email)
	return nil
}

// SignOut clears both the in-memory and the persisted session.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.state.Delete(StorageKey); err != nil {
		logging.SessionWarn("failed to clear persisted session: %v", err)
	}
	logging.Session("signed out")
}

// Current returns the active admin session, if any.
func (s *Store) Current() (types.AdminUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return types.AdminUser{}, false
	}
	return *s.user, true
}

// SignedIn reports whether an admin session is active.
func (s *Store) SignedIn() bool {
	_, ok := s.Current()
	return ok
}
