package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioshelf/curio/internal/sqlite"
	"github.com/curioshelf/curio/pkg/types"
)

func setupSession(t *testing.T) (*sqlite.Store, *Session) {
	t.Helper()
	store, err := sqlite.Open(types.Config{DBPath: filepath.Join(t.TempDir(), "collections.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, New(store)
}

func TestAuthenticate(t *testing.T) {
	store, sess := setupSession(t)
	require.NoError(t, store.Save(&types.User{Username: "alice", Password: "secret", Role: types.RoleUser}))

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantRole string
	}{
		{name: "seeded admin", username: "admin", password: "admin", wantRole: types.RoleAdmin},
		{name: "regular user", username: "alice", password: "secret", wantRole: types.RoleUser},
		{name: "wrong password", username: "alice", password: "nope", wantErr: types.ErrInvalidCredentials},
		{name: "unknown user", username: "carol", password: "secret", wantErr: types.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := sess.Authenticate(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, p.Username)
			assert.Equal(t, tt.wantRole, p.Role)
		})
	}
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	store, sess := setupSession(t)
	u := &types.User{Username: "bob", Password: "pw", Role: types.RoleUser}
	require.NoError(t, store.Save(u))
	require.NoError(t, store.SetStatus(u, types.StatusInactive))

	_, err := sess.Authenticate("bob", "pw")
	assert.ErrorIs(t, err, types.ErrAccountInactive)

	_, ok := sess.Current()
	assert.False(t, ok, "failed login must not leave a principal behind")
}

func TestFailedLoginClearsNothing(t *testing.T) {
	_, sess := setupSession(t)
	_, err := sess.Authenticate("admin", "admin")
	require.NoError(t, err)

	_, err = sess.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
	// The prior principal remains until logout.
	p, ok := sess.Current()
	assert.True(t, ok)
	assert.Equal(t, "admin", p.Username)
}

func TestCurrentAndLogout(t *testing.T) {
	_, sess := setupSession(t)

	_, ok := sess.Current()
	assert.False(t, ok)
	assert.False(t, sess.IsAdmin())

	_, err := sess.Authenticate("admin", "admin")
	require.NoError(t, err)

	p, ok := sess.Current()
	assert.True(t, ok)
	assert.Equal(t, "admin", p.Username)
	assert.True(t, sess.IsAdmin())

	sess.Logout()
	_, ok = sess.Current()
	assert.False(t, ok)
	assert.False(t, sess.IsAdmin())
}

func TestIsAdminIsRoleBased(t *testing.T) {
	store, sess := setupSession(t)
	require.NoError(t, store.Save(&types.User{Username: "root", Password: "pw", Role: types.RoleAdmin}))
	require.NoError(t, store.Save(&types.User{Username: "pat", Password: "pw", Role: types.RoleUser}))

	_, err := sess.Authenticate("root", "pw")
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin(), "any account with the Admin role is privileged")

	_, err = sess.Authenticate("pat", "pw")
	require.NoError(t, err)
	assert.False(t, sess.IsAdmin())
}
