// Collection management commands. Status changes cascade to every item in
// the collection; delete is refused while items remain.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curioshelf/curio/pkg/types"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"coll"},
	Short:   "Manage collections",
}

var collectionOwner string

var collectionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := collectionOwner
		if owner == "" {
			owner = flagUser
		}
		c := &types.Collection{CollectionName: args[0], User: owner}
		if err := scoped.Save(c); err != nil {
			return err
		}
		fmt.Printf("created collection %s for %s\n", c.CollectionName, c.User)
		return nil
	},
}

var collectionListCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := parseFilters(args)
		if err != nil {
			return err
		}
		records, err := scoped.List(types.TableCollection, filters)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(records)
		}
		rows := make([][]string, len(records))
		for i, r := range records {
			c := r.(*types.Collection)
			rows[i] = []string{c.CollectionName, c.User, c.CollStatus}
		}
		printTable([]string{"COLLECTION", "OWNER", "STATUS"}, rows)
		return nil
	},
}

func collectionStatusCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := scoped.Get(types.TableCollection, args[0])
			if err != nil {
				return err
			}
			c := rec.(*types.Collection)
			if err := scoped.SetCollectionStatus(c, status); err != nil {
				return err
			}
			fmt.Printf("collection %s and all its items are now %s\n", c.CollectionName, status)
			return nil
		},
	}
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Permanently remove an empty collection",
	Long: `Delete permanently removes a collection row. It is refused while any
item still references the collection; deactivate instead, or delete the
items first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := scoped.Get(types.TableCollection, args[0])
		if err != nil {
			return err
		}
		if err := scoped.Delete(rec); err != nil {
			return err
		}
		fmt.Printf("deleted collection %s\n", args[0])
		return nil
	},
}

func init() {
	collectionAddCmd.Flags().StringVar(&collectionOwner, "owner", "", "owning user (admin only; defaults to the logged-in user)")

	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionStatusCmd("deactivate", "Deactivate a collection and all its items", types.StatusInactive))
	collectionCmd.AddCommand(collectionStatusCmd("reactivate", "Reactivate a collection and all its items", types.StatusActive))
	collectionCmd.AddCommand(collectionDeleteCmd)
}
