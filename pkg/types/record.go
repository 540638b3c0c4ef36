package types

// Status values shared by every entity. A record is created Active and moves
// between the two states only through explicit status transitions.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// ValidStatus reports whether s is one of the two recognized status values.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// Schema describes how a record maps onto its table. It replaces attribute
// reflection with an explicit, ordered column list: one descriptor per entity
// type, consumed by a single generic engine.
type Schema struct {
	// Table is the SQL table name.
	Table string
	// Identifier is the column that uniquely identifies a row.
	Identifier string
	// Surrogate marks an identifier assigned by the store on insert
	// (autoincrement). Surrogate identifiers are omitted from INSERT
	// statements and written back to the record afterwards.
	Surrogate bool
	// Columns lists every non-identifier column in declared order.
	Columns []string
	// OwnerColumn names the column holding the owning user, or "" when the
	// table is not owner-scoped.
	OwnerColumn string
}

// HasColumn reports whether name is the identifier or a declared column.
func (s Schema) HasColumn(name string) bool {
	if name == s.Identifier {
		return true
	}
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Record is the contract between an entity type and the persistence engine.
// Values and ScanDest follow the Schema's declared order exactly; the engine
// rejects records whose arity disagrees with their schema.
type Record interface {
	// Schema returns the entity's table descriptor.
	Schema() Schema

	// ID returns the current identifier value.
	ID() any

	// Values returns the non-identifier column values in Schema.Columns order.
	Values() []any

	// ScanDest returns scan destinations for a full row: the identifier
	// first, then the declared columns in order.
	ScanDest() []any

	// Status returns the record's lifecycle status.
	Status() string

	// SetStatus replaces the record's lifecycle status.
	SetStatus(status string)

	// Validate checks the record's own fields before it reaches the store.
	Validate() error
}

// Table names for the four entity tables and the audit log.
const (
	TableUser       = "User"
	TableCollection = "Collection"
	TableItem       = "Item"
	TableSource     = "Source"
	TableLog        = "Log"
)

// NewRecord returns an empty record for the given table name.
// Returns ErrTableUnknown for names outside the four entity tables.
func NewRecord(table string) (Record, error) {
	switch table {
	case TableUser:
		return &User{}, nil
	case TableCollection:
		return &Collection{}, nil
	case TableItem:
		return &Item{}, nil
	case TableSource:
		return &Source{}, nil
	default:
		return nil, ErrTableUnknown
	}
}

// SchemaFor returns the schema descriptor for the given table name.
// Returns ErrTableUnknown for names outside the four entity tables.
func SchemaFor(table string) (Schema, error) {
	rec, err := NewRecord(table)
	if err != nil {
		return Schema{}, err
	}
	return rec.Schema(), nil
}
