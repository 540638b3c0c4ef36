// Package authz narrows store access to what the current principal is
// entitled to. It is the single boundary between callers and the persistence
// engine: reads on owner-scoped tables are filtered by the principal's
// username unless the principal is an admin, and every mutation passes
// through here so the audit log and ownership checks cannot be bypassed.
package authz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/curioshelf/curio/internal/session"
	"github.com/curioshelf/curio/internal/sqlite"
	"github.com/curioshelf/curio/pkg/types"
)

// Scoped wraps a Store with the identity held by a Session.
type Scoped struct {
	store   *sqlite.Store
	session *session.Session
}

// New returns a Scoped view of store for the given session.
func New(store *sqlite.Store, sess *session.Session) *Scoped {
	return &Scoped{store: store, session: sess}
}

// List returns rows of table matching filters, narrowed to the current
// principal's rows when the table carries an owner column and the principal
// is not an admin. With no principal, owner-scoped tables yield an empty
// result rather than an error; an absent user owns nothing.
func (s *Scoped) List(table string, filters map[string]any) ([]types.Record, error) {
	sch, err := types.SchemaFor(table)
	if err != nil {
		return nil, err
	}

	if sch.OwnerColumn != "" && !s.session.IsAdmin() {
		principal, ok := s.session.Current()
		if !ok {
			return nil, nil
		}
		// The principal's username is ANDed with whatever the caller
		// supplied. A caller-supplied owner that names someone else makes
		// the conjunction unsatisfiable, so nothing comes back.
		if supplied, ok := filters[sch.OwnerColumn]; ok && supplied != principal.Username {
			return nil, nil
		}
		scoped := make(map[string]any, len(filters)+1)
		for k, v := range filters {
			scoped[k] = v
		}
		scoped[sch.OwnerColumn] = principal.Username
		filters = scoped
	}

	return s.store.List(table, filters)
}

// Get returns the row of table identified by id. Non-admin principals only
// see rows they own on owner-scoped tables; anything else reads as absent.
func (s *Scoped) Get(table string, id any) (types.Record, error) {
	rec, err := s.store.Get(table, id)
	if err != nil {
		return nil, err
	}

	sch := rec.Schema()
	if sch.OwnerColumn != "" && !s.session.IsAdmin() {
		principal, ok := s.session.Current()
		if !ok || owner(rec) != principal.Username {
			return nil, fmt.Errorf("%s %v: %w", table, id, types.ErrNotFound)
		}
	}
	return rec, nil
}

// owner extracts the owning username from an owner-scoped record.
func owner(rec types.Record) string {
	switch r := rec.(type) {
	case *types.Collection:
		return r.User
	case *types.Item:
		return r.User
	default:
		return ""
	}
}

// actor returns the current principal's username, or an error when nobody is
// logged in. Every mutation requires an authenticated actor.
func (s *Scoped) actor() (string, error) {
	principal, ok := s.session.Current()
	if !ok {
		return "", types.ErrNotAuthenticated
	}
	return principal.Username, nil
}

// checkMutation enforces who may change what: the User table is admin-only,
// and non-admins may only touch owner-scoped rows they own. Sources are open
// to any authenticated principal.
func (s *Scoped) checkMutation(rec types.Record) error {
	actor, err := s.actor()
	if err != nil {
		return err
	}
	if s.session.IsAdmin() {
		return nil
	}

	sch := rec.Schema()
	if sch.Table == types.TableUser {
		return types.ErrNotAuthorized
	}
	if sch.OwnerColumn != "" && owner(rec) != actor {
		return types.ErrNotAuthorized
	}
	return nil
}

// Save validates rec, runs the application-layer uniqueness and ownership
// checks the store cannot express, inserts the row (Status forced Active),
// and appends one audit entry.
func (s *Scoped) Save(rec types.Record) error {
	if err := s.checkMutation(rec); err != nil {
		return err
	}
	if err := s.precheck(rec); err != nil {
		return err
	}
	if err := s.store.Save(rec); err != nil {
		return err
	}
	return s.log("created %s %v", rec)
}

// Update replaces every non-identifier field of rec's row and appends one
// audit entry. Fails with ErrNotFound when the identifier matches nothing.
// The replacement values pass the same field validation and item-ownership
// check as a fresh save; an update can no more point an item at someone
// else's collection than a save can.
func (s *Scoped) Update(rec types.Record) error {
	if err := s.checkMutation(rec); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if it, ok := rec.(*types.Item); ok {
		if err := s.checkItemCollection(it); err != nil {
			return err
		}
	}
	if err := s.store.Update(rec); err != nil {
		return err
	}
	return s.log("updated %s %v", rec)
}

// Delete removes rec's row. Collections are refused while items still
// reference them; other entities delete directly. Appends one audit entry.
func (s *Scoped) Delete(rec types.Record) error {
	if err := s.checkMutation(rec); err != nil {
		return err
	}
	var err error
	if c, ok := rec.(*types.Collection); ok {
		err = s.store.DeleteCollection(c)
	} else {
		err = s.store.Delete(rec)
	}
	if err != nil {
		return err
	}
	return s.log("deleted %s %v", rec)
}

// SetStatus transitions one row and appends one audit entry.
func (s *Scoped) SetStatus(rec types.Record, newStatus string) error {
	if err := s.checkMutation(rec); err != nil {
		return err
	}
	if err := s.store.SetStatus(rec, newStatus); err != nil {
		return err
	}
	return s.log("set %s %v status to "+newStatus, rec)
}

// SetCollectionStatus transitions a collection and every item in it as one
// transaction, then appends one audit entry.
func (s *Scoped) SetCollectionStatus(c *types.Collection, newStatus string) error {
	if err := s.checkMutation(c); err != nil {
		return err
	}
	if err := s.store.SetCollectionStatus(c, newStatus); err != nil {
		return err
	}
	actor, _ := s.actor()
	return s.store.AppendLog(actor, fmt.Sprintf(
		"set Collection %s and all its items to %s", c.CollectionName, newStatus))
}

// Logs returns audit entries; non-admins only see their own.
func (s *Scoped) Logs() ([]types.LogEntry, error) {
	if s.session.IsAdmin() {
		return s.store.Logs("")
	}
	actor, err := s.actor()
	if err != nil {
		return nil, err
	}
	return s.store.Logs(actor)
}

// log appends one audit entry for a mutation on rec. format carries two
// verbs: the action and the entity identifier.
func (s *Scoped) log(format string, rec types.Record) error {
	actor, _ := s.actor()
	return s.store.AppendLog(actor, fmt.Sprintf(format, rec.Schema().Table, rec.ID()))
}

// checkItemCollection verifies that it.Collection names an existing
// collection owned by it.User.
func (s *Scoped) checkItemCollection(it *types.Item) error {
	colls, err := s.store.List(types.TableCollection, map[string]any{"User": it.User})
	if err != nil {
		return err
	}
	for _, e := range colls {
		if e.(*types.Collection).CollectionName == it.Collection {
			return nil
		}
	}
	return fmt.Errorf("no collection %s owned by %s: %w",
		it.Collection, it.User, types.ErrValidation)
}

// precheck runs the per-entity invariants the schema cannot enforce:
// identifier uniqueness where the store is lax, per-owner case-insensitive
// collection names, and item-to-collection ownership.
func (s *Scoped) precheck(rec types.Record) error {
	switch r := rec.(type) {
	case *types.User:
		if err := r.Validate(); err != nil {
			return err
		}
		if _, err := s.store.Get(types.TableUser, r.Username); err == nil {
			return fmt.Errorf("username %s already exists: %w",
				r.Username, types.ErrConstraintViolation)
		} else if !errors.Is(err, types.ErrNotFound) {
			return err
		}
	case *types.Collection:
		if err := r.Validate(); err != nil {
			return err
		}
		existing, err := s.store.List(types.TableCollection, map[string]any{"User": r.User})
		if err != nil {
			return err
		}
		for _, e := range existing {
			if strings.EqualFold(e.(*types.Collection).CollectionName, r.CollectionName) {
				return fmt.Errorf("collection %s already exists for %s: %w",
					r.CollectionName, r.User, types.ErrConstraintViolation)
			}
		}
	case *types.Item:
		if err := r.Validate(); err != nil {
			return err
		}
		if err := s.checkItemCollection(r); err != nil {
			return err
		}
	case *types.Source:
		if err := r.Validate(); err != nil {
			return err
		}
		if _, err := s.store.Get(types.TableSource, r.BusinessName); err == nil {
			return fmt.Errorf("source %s already exists: %w",
				r.BusinessName, types.ErrConstraintViolation)
		} else if !errors.Is(err, types.ErrNotFound) {
			return err
		}
	}
	return nil
}
