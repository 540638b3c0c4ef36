// Root command wiring for the curio CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/curioshelf/curio/internal/authz"
	"github.com/curioshelf/curio/internal/paths"
	"github.com/curioshelf/curio/internal/session"
	"github.com/curioshelf/curio/internal/sqlite"
	"github.com/curioshelf/curio/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDB        string
	flagUser      string
	flagPassword  string
	flagJSON      bool
)

// Process-wide state initialized by PersistentPreRunE.
var (
	store  *sqlite.Store
	sess   *session.Session
	scoped *authz.Scoped
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "curio",
	Short: "Curio manages a personal-collection inventory",
	Long: `Curio manages a personal-collection inventory of users, collections,
items, and sources backed by a single SQLite file. Every command
authenticates with --user and --password; non-admin accounts only see
and change their own collections and items.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

		if skipsSetup(cmd) {
			return nil
		}

		if err := openStore(); err != nil {
			return err
		}

		sess = session.New(store)
		scoped = authz.New(store, sess)

		// init only prepares the database file; no account needs to exist yet.
		if cmd.Name() == "init" {
			return nil
		}

		if flagUser == "" {
			return fmt.Errorf("login required: %w", types.ErrNotAuthenticated)
		}
		principal, err := sess.Authenticate(flagUser, flagPassword)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		logger.Debug("authenticated", "user", principal.Username, "role", principal.Role)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if sess != nil {
			sess.Logout()
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (default: $(CWD)/collections.sqlite)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "username to authenticate as")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "p", "", "password for --user")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(sourceCmd)
	rootCmd.AddCommand(logCmd)
}

// skipsSetup reports whether cmd runs without a store or login: version,
// cobra's built-in help and completion commands, and the hidden shell
// completion hooks.
func skipsSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	// Completion subcommands (bash, zsh, fish, powershell).
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// openStore resolves the database path (flag > config.yaml > env > default)
// and opens the store.
func openStore() error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dbPath, err := paths.ResolveDB(flagDB, cfg.GetString(cfgKeyDBPath))
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	store, err = sqlite.Open(types.Config{DBPath: dbPath})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "path", dbPath)
	return nil
}
