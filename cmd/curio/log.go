// Audit log inspection.
package main

import (
	"time"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the audit log",
	Long: `Log prints the append-only audit trail: one line per mutating operation,
with the acting user and timestamp. Admins see every entry; other users
see only their own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := scoped.Logs()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(entries)
		}
		rows := make([][]string, len(entries))
		for i, e := range entries {
			rows[i] = []string{e.Timestamp.Format(time.RFC3339), e.User, e.Message}
		}
		printTable([]string{"TIME", "USER", "MESSAGE"}, rows)
		return nil
	},
}
