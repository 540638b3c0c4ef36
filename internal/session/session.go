// Package session holds the identity of the one authenticated principal in
// a running Curio process. The session is explicit state passed to whoever
// needs identity, created at login and cleared at logout; there is no global
// logged-in user.
package session

import (
	"errors"
	"fmt"

	"github.com/curioshelf/curio/internal/sqlite"
	"github.com/curioshelf/curio/pkg/types"
)

// Principal is the authenticated user and their role.
type Principal struct {
	Username string
	Role     string
}

// Session tracks at most one authenticated principal. A single desktop
// process has a single logged-in user, so no locking guards the state.
type Session struct {
	store     *sqlite.Store
	principal *Principal
}

// New returns a Session with no authenticated principal.
func New(store *sqlite.Store) *Session {
	return &Session{store: store}
}

// Authenticate looks up the user by username and compares the password as
// stored. The comparison is plain equality: the store keeps credentials
// unhashed, which is a known property of this application, not something
// this layer papers over. Returns ErrInvalidCredentials when no user
// matches, ErrAccountInactive when the account matched but is not Active.
func (s *Session) Authenticate(username, password string) (Principal, error) {
	rec, err := s.store.Get(types.TableUser, username)
	if errors.Is(err, types.ErrNotFound) {
		return Principal{}, types.ErrInvalidCredentials
	}
	if err != nil {
		return Principal{}, fmt.Errorf("looking up user: %w", err)
	}

	user := rec.(*types.User)
	if user.Password != password {
		return Principal{}, types.ErrInvalidCredentials
	}
	if user.Status() != types.StatusActive {
		return Principal{}, types.ErrAccountInactive
	}

	s.principal = &Principal{Username: user.Username, Role: user.Role}
	return *s.principal, nil
}

// Current returns the authenticated principal, or false before login.
func (s *Session) Current() (Principal, bool) {
	if s.principal == nil {
		return Principal{}, false
	}
	return *s.principal, true
}

// IsAdmin reports whether the current principal carries the Admin role.
// Only the role decides; no username is treated as privileged.
func (s *Session) IsAdmin() bool {
	return s.principal != nil && s.principal.Role == types.RoleAdmin
}

// Logout clears the principal. Persisted data is untouched.
func (s *Session) Logout() {
	s.principal = nil
}
