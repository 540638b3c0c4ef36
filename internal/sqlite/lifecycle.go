package sqlite

import (
	"fmt"

	"github.com/curioshelf/curio/pkg/types"
)

// SetStatus transitions exactly one row to newStatus and updates the
// in-memory record to match, so the on-disk and in-memory views never
// diverge after a successful call.
func (s *Store) SetStatus(rec types.Record, newStatus string) error {
	if !types.ValidStatus(newStatus) {
		return types.ErrInvalidStatus
	}

	sch := rec.Schema()
	query := fmt.Sprintf("UPDATE %s SET Status = ? WHERE %s = ?", sch.Table, sch.Identifier)
	res, err := s.db.Exec(query, newStatus, rec.ID())
	if err != nil {
		return fmt.Errorf("setting %s status: %w", sch.Table, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting %s status: %w", sch.Table, err)
	}
	if n == 0 {
		return fmt.Errorf("setting %s %v status: %w", sch.Table, rec.ID(), types.ErrNotFound)
	}

	rec.SetStatus(newStatus)
	return nil
}

// SetCollectionStatus transitions a collection and every item referencing it
// in a single transaction. Either both the collection row and all matching
// item rows carry newStatus afterwards, or nothing changed; no item can be
// left Active under an Inactive collection.
func (s *Store) SetCollectionStatus(c *types.Collection, newStatus string) error {
	if !types.ValidStatus(newStatus) {
		return types.ErrInvalidStatus
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning cascade: %w", classify(err))
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE Collection SET Status = ? WHERE CollectionName = ?",
		newStatus, c.CollectionName)
	if err != nil {
		return fmt.Errorf("setting collection status: %w", classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting collection status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("collection %s: %w", c.CollectionName, types.ErrNotFound)
	}

	if _, err := tx.Exec("UPDATE Item SET Status = ? WHERE Collection = ?",
		newStatus, c.CollectionName); err != nil {
		return fmt.Errorf("cascading status to items: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cascade: %w", classify(err))
	}

	c.SetStatus(newStatus)
	return nil
}

// DeleteCollection removes a collection row, refusing while any item still
// references it. Deleting under live children would orphan their Collection
// references, so callers must delete or move the items first.
func (s *Store) DeleteCollection(c *types.Collection) error {
	var children int
	row := s.db.QueryRow("SELECT COUNT(*) FROM Item WHERE Collection = ?", c.CollectionName)
	if err := row.Scan(&children); err != nil {
		return fmt.Errorf("counting collection items: %w", classify(err))
	}
	if children > 0 {
		return fmt.Errorf("collection %s still has %d item(s): %w",
			c.CollectionName, children, types.ErrConstraintViolation)
	}
	return s.Delete(c)
}
