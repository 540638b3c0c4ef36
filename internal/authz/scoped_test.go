package authz

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioshelf/curio/internal/session"
	"github.com/curioshelf/curio/internal/sqlite"
	"github.com/curioshelf/curio/pkg/types"
)

// setupScoped opens a fresh store with users alice and bob, each owning one
// collection with one item, created through an admin-scoped view so every
// application-layer check runs.
func setupScoped(t *testing.T) (*sqlite.Store, *session.Session, *Scoped) {
	t.Helper()
	store, err := sqlite.Open(types.Config{DBPath: filepath.Join(t.TempDir(), "collections.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sess := session.New(store)
	scoped := New(store, sess)

	loginAdmin(t, sess)
	for _, u := range []string{"alice", "bob"} {
		require.NoError(t, scoped.Save(&types.User{Username: u, Password: "pw", Role: types.RoleUser}))
	}
	require.NoError(t, scoped.Save(&types.Collection{CollectionName: "Coins", User: "alice"}))
	require.NoError(t, scoped.Save(&types.Collection{CollectionName: "Stamps", User: "bob"}))
	require.NoError(t, scoped.Save(&types.Item{ItemName: "Penny", Collection: "Coins", User: "alice"}))
	require.NoError(t, scoped.Save(&types.Item{ItemName: "Blue Mauritius", Collection: "Stamps", User: "bob"}))
	sess.Logout()

	return store, sess, scoped
}

func loginAdmin(t *testing.T, sess *session.Session) {
	t.Helper()
	_, err := sess.Authenticate("admin", "admin")
	require.NoError(t, err)
}

func login(t *testing.T, sess *session.Session, username string) {
	t.Helper()
	_, err := sess.Authenticate(username, "pw")
	require.NoError(t, err)
}

func TestListOwnerScoping(t *testing.T) {
	_, sess, scoped := setupScoped(t)

	t.Run("non-admin sees only own rows", func(t *testing.T) {
		login(t, sess, "bob")

		colls, err := scoped.List(types.TableCollection, nil)
		require.NoError(t, err)
		require.Len(t, colls, 1)
		assert.Equal(t, "Stamps", colls[0].(*types.Collection).CollectionName)

		items, err := scoped.List(types.TableItem, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "bob", items[0].(*types.Item).User)
	})

	t.Run("admin sees all rows", func(t *testing.T) {
		loginAdmin(t, sess)

		colls, err := scoped.List(types.TableCollection, nil)
		require.NoError(t, err)
		assert.Len(t, colls, 2)
	})

	t.Run("caller-supplied owner filter cannot widen scope", func(t *testing.T) {
		login(t, sess, "bob")

		colls, err := scoped.List(types.TableCollection, map[string]any{"User": "alice"})
		require.NoError(t, err)
		assert.Empty(t, colls, "owner=alice AND owner=bob is unsatisfiable")

		// Naming yourself is a satisfiable conjunction.
		colls, err = scoped.List(types.TableCollection, map[string]any{"User": "bob"})
		require.NoError(t, err)
		require.Len(t, colls, 1)
		assert.Equal(t, "Stamps", colls[0].(*types.Collection).CollectionName)
	})

	t.Run("no principal yields empty result on owner-scoped tables", func(t *testing.T) {
		sess.Logout()

		colls, err := scoped.List(types.TableCollection, nil)
		require.NoError(t, err)
		assert.Empty(t, colls)
	})
}

func TestGetOwnerScoping(t *testing.T) {
	_, sess, scoped := setupScoped(t)

	login(t, sess, "bob")
	_, err := scoped.Get(types.TableCollection, "Coins")
	assert.ErrorIs(t, err, types.ErrNotFound, "another owner's row reads as absent")

	rec, err := scoped.Get(types.TableCollection, "Stamps")
	require.NoError(t, err)
	assert.Equal(t, "bob", rec.(*types.Collection).User)

	loginAdmin(t, sess)
	_, err = scoped.Get(types.TableCollection, "Coins")
	require.NoError(t, err)
}

func TestMutationRequiresPrincipal(t *testing.T) {
	_, _, scoped := setupScoped(t)

	err := scoped.Save(&types.Collection{CollectionName: "Rocks", User: "alice"})
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestUserTableIsAdminOnly(t *testing.T) {
	_, sess, scoped := setupScoped(t)
	login(t, sess, "alice")

	err := scoped.Save(&types.User{Username: "eve", Password: "pw", Role: types.RoleUser})
	assert.ErrorIs(t, err, types.ErrNotAuthorized)

	rec := &types.User{Username: "bob", Password: "pw", Role: types.RoleUser, UserStatus: types.StatusActive}
	assert.ErrorIs(t, scoped.SetStatus(rec, types.StatusInactive), types.ErrNotAuthorized)
}

func TestNonAdminCannotTouchOthersRows(t *testing.T) {
	store, sess, scoped := setupScoped(t)
	login(t, sess, "bob")

	// Writing into alice's collection is refused before any SQL runs.
	err := scoped.Save(&types.Item{ItemName: "Dime", Collection: "Coins", User: "alice"})
	assert.ErrorIs(t, err, types.ErrNotAuthorized)

	items, err := store.List(types.TableItem, map[string]any{"ItemName": "Dime"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSavePrechecks(t *testing.T) {
	_, sess, scoped := setupScoped(t)
	loginAdmin(t, sess)

	t.Run("duplicate username", func(t *testing.T) {
		err := scoped.Save(&types.User{Username: "alice", Password: "pw", Role: types.RoleUser})
		assert.ErrorIs(t, err, types.ErrConstraintViolation)
	})

	t.Run("collection name unique per owner case-insensitively", func(t *testing.T) {
		err := scoped.Save(&types.Collection{CollectionName: "coins", User: "alice"})
		assert.ErrorIs(t, err, types.ErrConstraintViolation)
	})

	t.Run("same collection name under another owner is fine", func(t *testing.T) {
		err := scoped.Save(&types.Collection{CollectionName: "Coins", User: "bob"})
		assert.NoError(t, err)
	})

	t.Run("item must reference a collection owned by its user", func(t *testing.T) {
		err := scoped.Save(&types.Item{ItemName: "Dime", Collection: "Stamps", User: "alice"})
		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("duplicate business name", func(t *testing.T) {
		require.NoError(t, scoped.Save(&types.Source{BusinessName: "Coin Shop"}))
		err := scoped.Save(&types.Source{BusinessName: "Coin Shop"})
		assert.ErrorIs(t, err, types.ErrConstraintViolation)
	})
}

func TestUpdateRechecksItemInvariants(t *testing.T) {
	store, sess, scoped := setupScoped(t)
	login(t, sess, "bob")

	items, err := store.List(types.TableItem, map[string]any{"ItemName": "Blue Mauritius"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	it := items[0].(*types.Item)

	t.Run("cannot repoint an item at another owner's collection", func(t *testing.T) {
		it.Collection = "Coins" // owned by alice
		err := scoped.Update(it)
		assert.ErrorIs(t, err, types.ErrValidation)

		rec, err := store.Get(types.TableItem, it.ItemID)
		require.NoError(t, err)
		assert.Equal(t, "Stamps", rec.(*types.Item).Collection, "row must be unchanged")
		it.Collection = "Stamps"
	})

	t.Run("replacement values are validated", func(t *testing.T) {
		it.ItemName = ""
		err := scoped.Update(it)
		assert.ErrorIs(t, err, types.ErrValidation)
		it.ItemName = "Blue Mauritius"
	})

	t.Run("valid update still goes through", func(t *testing.T) {
		it.Notes = "mint condition"
		require.NoError(t, scoped.Update(it))

		rec, err := store.Get(types.TableItem, it.ItemID)
		require.NoError(t, err)
		assert.Equal(t, "mint condition", rec.(*types.Item).Notes)
	})
}

func TestMutationsAreAudited(t *testing.T) {
	store, sess, scoped := setupScoped(t)
	login(t, sess, "alice")

	require.NoError(t, scoped.Save(&types.Item{ItemName: "Dime", Collection: "Coins", User: "alice"}))

	entries, err := store.Logs("alice")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "alice", last.User)
	assert.Contains(t, last.Message, "created Item")
}

func TestLogsScopedByActor(t *testing.T) {
	_, sess, scoped := setupScoped(t)

	login(t, sess, "alice")
	require.NoError(t, scoped.Save(&types.Item{ItemName: "Dime", Collection: "Coins", User: "alice"}))
	mine, err := scoped.Logs()
	require.NoError(t, err)
	for _, e := range mine {
		assert.Equal(t, "alice", e.User)
	}

	loginAdmin(t, sess)
	all, err := scoped.Logs()
	require.NoError(t, err)
	assert.Greater(t, len(all), len(mine), "admin sees every actor's entries")
}

// The end-to-end walk from the product description: admin creates a user,
// the user builds a collection with an item, admin deactivates the
// collection, and the cascade is visible everywhere.
func TestAdminDeactivatesUserCollection(t *testing.T) {
	store, err := sqlite.Open(types.Config{DBPath: filepath.Join(t.TempDir(), "collections.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sess := session.New(store)
	scoped := New(store, sess)

	loginAdmin(t, sess)
	require.NoError(t, scoped.Save(&types.User{Username: "alice", Password: "pw", Role: types.RoleUser}))
	sess.Logout()

	login(t, sess, "alice")
	require.NoError(t, scoped.Save(&types.Collection{CollectionName: "Coins", User: "alice"}))
	require.NoError(t, scoped.Save(&types.Item{ItemName: "Penny", Collection: "Coins", User: "alice"}))
	sess.Logout()

	loginAdmin(t, sess)
	rec, err := scoped.Get(types.TableCollection, "Coins")
	require.NoError(t, err)
	require.NoError(t, scoped.SetCollectionStatus(rec.(*types.Collection), types.StatusInactive))

	items, err := scoped.List(types.TableItem, map[string]any{"Collection": "Coins"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Penny", items[0].(*types.Item).ItemName)
	assert.Equal(t, types.StatusInactive, items[0].Status())

	rec, err = scoped.Get(types.TableCollection, "Coins")
	require.NoError(t, err)
	assert.Equal(t, types.StatusInactive, rec.Status())
}
