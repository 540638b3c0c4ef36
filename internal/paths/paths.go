// Package paths resolves the configuration directory and database file
// location across platforms.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDBName is the database file created when no override names one.
const DefaultDBName = "collections.sqlite"

// Environment variable names for overrides.
const (
	EnvConfigDir = "CURIO_CONFIG_DIR"
	EnvDB        = "CURIO_DB"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/curio (fallback ~/.config/curio)
// macOS:   ~/Library/Application Support/curio
// Windows: %APPDATA%/curio
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "curio"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "curio"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "curio"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CURIO_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDB returns the database file path following the precedence chain:
// flag > config value > CURIO_DB env > $(CWD)/collections.sqlite.
//
// The CWD-relative default matches the original application, which opened
// the database next to wherever it was launched.
func ResolveDB(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDB); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDBName), nil
}
