// Source management commands. Sources have no cascade dependents, so the
// full add/update/delete surface is available to any authenticated user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curioshelf/curio/pkg/types"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage sources (businesses items come from)",
}

var (
	sourceFirstName string
	sourceLastName  string
	sourcePhone     string
	sourceAddress   string
	sourceCity      string
	sourceState     string
	sourceZip       string
	sourceEmail     string
)

// sourceFieldFlags registers the contact-detail flags shared by add and update.
func sourceFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sourceFirstName, "first-name", "", "contact first name")
	cmd.Flags().StringVar(&sourceLastName, "last-name", "", "contact last name")
	cmd.Flags().StringVar(&sourcePhone, "phone", "", "phone number")
	cmd.Flags().StringVar(&sourceAddress, "address", "", "street address")
	cmd.Flags().StringVar(&sourceCity, "city", "", "city")
	cmd.Flags().StringVar(&sourceState, "state", "", "state")
	cmd.Flags().StringVar(&sourceZip, "zip", "", "zip code")
	cmd.Flags().StringVar(&sourceEmail, "email", "", "email address")
}

var sourceAddCmd = &cobra.Command{
	Use:   "add <business-name>",
	Short: "Create a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &types.Source{
			BusinessName: args[0],
			FirstName:    sourceFirstName,
			LastName:     sourceLastName,
			Phone:        sourcePhone,
			Address:      sourceAddress,
			City:         sourceCity,
			State:        sourceState,
			Zip:          sourceZip,
			Email:        sourceEmail,
		}
		if err := scoped.Save(s); err != nil {
			return err
		}
		fmt.Printf("created source %s\n", s.BusinessName)
		return nil
	},
}

var sourceListCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := parseFilters(args)
		if err != nil {
			return err
		}
		records, err := scoped.List(types.TableSource, filters)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(records)
		}
		rows := make([][]string, len(records))
		for i, r := range records {
			s := r.(*types.Source)
			rows[i] = []string{s.BusinessName, s.FirstName + " " + s.LastName, s.Phone, s.Email, s.SourceStatus}
		}
		printTable([]string{"BUSINESS", "CONTACT", "PHONE", "EMAIL", "STATUS"}, rows)
		return nil
	},
}

var sourceUpdateCmd = &cobra.Command{
	Use:   "update <business-name>",
	Short: "Replace fields of a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := scoped.Get(types.TableSource, args[0])
		if err != nil {
			return err
		}
		s := rec.(*types.Source)

		flags := cmd.Flags()
		if flags.Changed("first-name") {
			s.FirstName = sourceFirstName
		}
		if flags.Changed("last-name") {
			s.LastName = sourceLastName
		}
		if flags.Changed("phone") {
			s.Phone = sourcePhone
		}
		if flags.Changed("address") {
			s.Address = sourceAddress
		}
		if flags.Changed("city") {
			s.City = sourceCity
		}
		if flags.Changed("state") {
			s.State = sourceState
		}
		if flags.Changed("zip") {
			s.Zip = sourceZip
		}
		if flags.Changed("email") {
			s.Email = sourceEmail
		}

		if err := scoped.Update(s); err != nil {
			return err
		}
		fmt.Printf("updated source %s\n", s.BusinessName)
		return nil
	},
}

var sourceDeleteCmd = &cobra.Command{
	Use:   "delete <business-name>",
	Short: "Permanently remove a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := scoped.Get(types.TableSource, args[0])
		if err != nil {
			return err
		}
		if err := scoped.Delete(rec); err != nil {
			return err
		}
		fmt.Printf("deleted source %s\n", args[0])
		return nil
	},
}

func init() {
	sourceFieldFlags(sourceAddCmd)
	sourceFieldFlags(sourceUpdateCmd)

	sourceCmd.AddCommand(sourceAddCmd)
	sourceCmd.AddCommand(sourceListCmd)
	sourceCmd.AddCommand(sourceUpdateCmd)
	sourceCmd.AddCommand(sourceDeleteCmd)
}
