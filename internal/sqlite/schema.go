package sqlite

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Column names match the original
// collections database so an existing file opens unchanged. UserID and
// SourceID are store-internal autoincrement keys; the engine identifies
// those rows by Username and BusinessName.
const schema = `
CREATE TABLE IF NOT EXISTS User (
    UserID   INTEGER PRIMARY KEY AUTOINCREMENT,
    Username TEXT NOT NULL UNIQUE COLLATE NOCASE,
    Password TEXT NOT NULL,
    Role     TEXT NOT NULL CHECK (Role IN ('Admin', 'User')),
    Status   TEXT NOT NULL DEFAULT 'Active' CHECK (Status IN ('Active', 'Inactive'))
);

CREATE TABLE IF NOT EXISTS Collection (
    User           TEXT NOT NULL REFERENCES User(Username),
    CollectionName TEXT NOT NULL,
    Status         TEXT NOT NULL DEFAULT 'Active' CHECK (Status IN ('Active', 'Inactive'))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_collection_owner_name
    ON Collection(User, CollectionName COLLATE NOCASE);

CREATE TABLE IF NOT EXISTS Item (
    ItemID       INTEGER PRIMARY KEY AUTOINCREMENT,
    ItemName     TEXT NOT NULL,
    Collection   TEXT,
    Source       TEXT,
    User         TEXT REFERENCES User(Username),
    Description  TEXT,
    PricePaid    NUMERIC,
    CurrentValue NUMERIC,
    Location     TEXT,
    Notes        TEXT,
    Status       TEXT NOT NULL DEFAULT 'Active' CHECK (Status IN ('Active', 'Inactive'))
);

CREATE TABLE IF NOT EXISTS Source (
    SourceID     INTEGER PRIMARY KEY AUTOINCREMENT,
    BusinessName TEXT NOT NULL UNIQUE,
    FirstName    TEXT,
    LastName     TEXT,
    Phone        TEXT,
    Address      TEXT,
    City         TEXT,
    State        TEXT,
    Zip          TEXT,
    Email        TEXT,
    Status       TEXT NOT NULL DEFAULT 'Active' CHECK (Status IN ('Active', 'Inactive'))
);

CREATE TABLE IF NOT EXISTS Log (
    LogID     TEXT PRIMARY KEY,
    User      TEXT NOT NULL,
    Message   TEXT NOT NULL,
    Timestamp TEXT NOT NULL
);
`

// ensureSchema creates all tables and indexes if they don't already exist.
func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
