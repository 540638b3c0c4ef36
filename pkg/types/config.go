package types

import "errors"

// Config holds store parameters for opening a Curio database.
type Config struct {
	// DBPath is the path of the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config validation errors.
var ErrDBPathEmpty = errors.New("db_path must not be empty")

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
