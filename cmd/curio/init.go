package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database file and default admin account",
	Long: `Init creates the database file with the full schema and seeds the
default administrator account (admin/admin). Change that password with
"curio user update" before real use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is already opened and seeded by PersistentPreRunE.
		fmt.Println("database initialized")
		return nil
	},
}
