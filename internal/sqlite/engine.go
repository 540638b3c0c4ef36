package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/curioshelf/curio/pkg/types"
)

// surrogateRecord is implemented by records whose identifier is assigned by
// the store on insert.
type surrogateRecord interface {
	SetSurrogateID(id int64)
}

// checkArity verifies that a record's values and scan destinations agree
// with its declared schema before any SQL is built from them.
func checkArity(rec types.Record) error {
	sch := rec.Schema()
	if len(rec.Values()) != len(sch.Columns) {
		return fmt.Errorf("%s: %d values for %d columns: %w",
			sch.Table, len(rec.Values()), len(sch.Columns), types.ErrMalformedRecord)
	}
	if len(rec.ScanDest()) != len(sch.Columns)+1 {
		return fmt.Errorf("%s: %d scan destinations for %d columns: %w",
			sch.Table, len(rec.ScanDest()), len(sch.Columns)+1, types.ErrMalformedRecord)
	}
	return nil
}

// Save inserts rec as a new row. Status is forced to Active; a record can
// never be created in any other state. For surrogate-identified records the
// assigned identifier is written back into rec. Uniqueness the store
// enforces surfaces as ErrConstraintViolation; callers pre-check the rest.
func (s *Store) Save(rec types.Record) error {
	if err := checkArity(rec); err != nil {
		return err
	}
	rec.SetStatus(types.StatusActive)

	sch := rec.Schema()
	cols := make([]string, 0, len(sch.Columns)+1)
	args := make([]any, 0, len(sch.Columns)+1)
	if !sch.Surrogate {
		cols = append(cols, sch.Identifier)
		args = append(args, rec.ID())
	}
	cols = append(cols, sch.Columns...)
	args = append(args, rec.Values()...)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		sch.Table, strings.Join(cols, ", "), placeholders(len(cols)))
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("inserting %s: %w", sch.Table, classify(err))
	}

	if sr, ok := rec.(surrogateRecord); ok && sch.Surrogate {
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading %s id: %w", sch.Table, err)
		}
		sr.SetSurrogateID(id)
	}
	return nil
}

// Update replaces every non-identifier column of the row matched by rec's
// identifier. Returns ErrNotFound if no row matches.
func (s *Store) Update(rec types.Record) error {
	if err := checkArity(rec); err != nil {
		return err
	}

	sch := rec.Schema()
	sets := make([]string, len(sch.Columns))
	for i, c := range sch.Columns {
		sets[i] = c + " = ?"
	}
	args := append(rec.Values(), rec.ID())

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		sch.Table, strings.Join(sets, ", "), sch.Identifier)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("updating %s: %w", sch.Table, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %s: %w", sch.Table, err)
	}
	if n == 0 {
		return fmt.Errorf("updating %s %v: %w", sch.Table, rec.ID(), types.ErrNotFound)
	}
	return nil
}

// Delete removes the row matched by rec's identifier. Irreversible, and
// never cascades; status transitions are the preferred removal for entities
// with dependents. Returns ErrNotFound if no row matches.
func (s *Store) Delete(rec types.Record) error {
	sch := rec.Schema()
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", sch.Table, sch.Identifier)
	res, err := s.db.Exec(query, rec.ID())
	if err != nil {
		return fmt.Errorf("deleting %s: %w", sch.Table, classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s: %w", sch.Table, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting %s %v: %w", sch.Table, rec.ID(), types.ErrNotFound)
	}
	return nil
}

// Get returns the single row of table whose identifier equals id.
// Returns ErrNotFound if no row matches.
func (s *Store) Get(table string, id any) (types.Record, error) {
	rec, err := types.NewRecord(table)
	if err != nil {
		return nil, err
	}
	sch := rec.Schema()

	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = ?",
		sch.Identifier, strings.Join(sch.Columns, ", "), sch.Table, sch.Identifier)
	row := s.db.QueryRow(query, id)
	if err := row.Scan(rec.ScanDest()...); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s %v: %w", sch.Table, id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning %s: %w", sch.Table, classify(err))
	}
	return rec, nil
}

// List returns every row of table matching the exact-match AND-conjunction
// of filters, in storage order. An empty or nil filter returns the full
// table. Filter keys must be declared columns of the table; anything else is
// rejected with ErrInvalidFilter, so no external value ever reaches the
// query text.
func (s *Store) List(table string, filters map[string]any) ([]types.Record, error) {
	sch, err := types.SchemaFor(table)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s, %s FROM %s",
		sch.Identifier, strings.Join(sch.Columns, ", "), sch.Table)

	// Sorted keys keep the statement deterministic for a given filter set.
	keys := make([]string, 0, len(filters))
	for k := range filters {
		if !sch.HasColumn(k) {
			return nil, fmt.Errorf("%s has no column %q: %w", sch.Table, k, types.ErrInvalidFilter)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys))
	if len(keys) > 0 {
		conds := make([]string, len(keys))
		for i, k := range keys {
			conds[i] = k + " = ?"
			args = append(args, filters[k])
		}
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", sch.Table, classify(err))
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		rec, err := types.NewRecord(table)
		if err != nil {
			return nil, err
		}
		if err := rows.Scan(rec.ScanDest()...); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", sch.Table, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Query is the low-level read escape hatch for statements outside the
// generic mapping. Statements must be parameterized; values are never
// interpolated into the query text.
func (s *Store) Query(query string, args ...any) (*sql.Rows, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// Exec is the low-level write escape hatch, with the same parameterization
// contract as Query.
func (s *Store) Exec(query string, args ...any) (sql.Result, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

// placeholders returns n comma-separated SQL parameter markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
