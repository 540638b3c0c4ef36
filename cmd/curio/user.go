// User management commands. All of these require the Admin role.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curioshelf/curio/pkg/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userAddRole string

var userAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := &types.User{
			Username: args[0],
			Password: args[1],
			Role:     userAddRole,
		}
		if err := scoped.Save(u); err != nil {
			return err
		}
		fmt.Printf("created user %s (%s)\n", u.Username, u.Role)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := parseFilters(args)
		if err != nil {
			return err
		}
		records, err := scoped.List(types.TableUser, filters)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(records)
		}
		rows := make([][]string, len(records))
		for i, r := range records {
			u := r.(*types.User)
			rows[i] = []string{u.Username, u.Role, u.UserStatus}
		}
		printTable([]string{"USERNAME", "ROLE", "STATUS"}, rows)
		return nil
	},
}

var (
	userNewPassword string
	userNewRole     string
)

var userUpdateCmd = &cobra.Command{
	Use:   "update <username>",
	Short: "Replace a user's password or role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := scoped.Get(types.TableUser, args[0])
		if err != nil {
			return err
		}
		u := rec.(*types.User)
		if cmd.Flags().Changed("new-password") {
			u.Password = userNewPassword
		}
		if cmd.Flags().Changed("new-role") {
			u.Role = userNewRole
		}
		if err := u.Validate(); err != nil {
			return err
		}
		if err := scoped.Update(u); err != nil {
			return err
		}
		fmt.Printf("updated user %s\n", u.Username)
		return nil
	},
}

func userStatusCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <username>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := scoped.Get(types.TableUser, args[0])
			if err != nil {
				return err
			}
			if err := scoped.SetStatus(rec, status); err != nil {
				return err
			}
			fmt.Printf("user %s is now %s\n", args[0], status)
			return nil
		},
	}
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Permanently remove a user account",
	Long: `Delete permanently removes a user row. Deactivation is the preferred way
to retire an account; delete is for rows that should never have existed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := scoped.Get(types.TableUser, args[0])
		if err != nil {
			return err
		}
		if err := scoped.Delete(rec); err != nil {
			return err
		}
		fmt.Printf("deleted user %s\n", args[0])
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddRole, "role", types.RoleUser, "role: "+types.RoleAdmin+" or "+types.RoleUser)

	userUpdateCmd.Flags().StringVar(&userNewPassword, "new-password", "", "new password")
	userUpdateCmd.Flags().StringVar(&userNewRole, "new-role", "", "new role")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userStatusCmd("deactivate", "Deactivate a user account", types.StatusInactive))
	userCmd.AddCommand(userStatusCmd("reactivate", "Reactivate a user account", types.StatusActive))
	userCmd.AddCommand(userDeleteCmd)
}
