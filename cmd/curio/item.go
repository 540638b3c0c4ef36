// Item management commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/curioshelf/curio/pkg/types"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items",
}

var (
	itemCollection   string
	itemSource       string
	itemOwner        string
	itemDescription  string
	itemPricePaid    string
	itemCurrentValue string
	itemLocation     string
	itemNotes        string
)

var itemAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item to a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := itemOwner
		if owner == "" {
			owner = flagUser
		}
		paid, err := types.ParseMoney("price paid", itemPricePaid)
		if err != nil {
			return err
		}
		value, err := types.ParseMoney("current value", itemCurrentValue)
		if err != nil {
			return err
		}

		it := &types.Item{
			ItemName:     args[0],
			Collection:   itemCollection,
			Source:       itemSource,
			User:         owner,
			Description:  itemDescription,
			PricePaid:    paid,
			CurrentValue: value,
			Location:     itemLocation,
			Notes:        itemNotes,
		}
		if err := scoped.Save(it); err != nil {
			return err
		}
		fmt.Printf("created item %s (id %d) in %s\n", it.ItemName, it.ItemID, it.Collection)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list [filter...]",
	Short: "List items",
	Long: `List items, optionally narrowed by key=value filters.

Example:
  curio item list
  curio item list Collection=Coins
  curio item list Collection=Coins Status=Active`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := parseFilters(args)
		if err != nil {
			return err
		}
		records, err := scoped.List(types.TableItem, filters)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(records)
		}
		rows := make([][]string, len(records))
		for i, r := range records {
			it := r.(*types.Item)
			rows[i] = []string{
				strconv.FormatInt(it.ItemID, 10), it.ItemName, it.Collection,
				it.User, it.Source, it.ItemStatus,
				strconv.FormatFloat(it.PricePaid, 'f', 2, 64),
				strconv.FormatFloat(it.CurrentValue, 'f', 2, 64),
			}
		}
		printTable([]string{"ID", "NAME", "COLLECTION", "OWNER", "SOURCE", "STATUS", "PAID", "VALUE"}, rows)
		return nil
	},
}

// itemID parses an item identifier argument.
func itemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q: %w", arg, types.ErrValidation)
	}
	return id, nil
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace fields of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := itemID(args[0])
		if err != nil {
			return err
		}
		rec, err := scoped.Get(types.TableItem, id)
		if err != nil {
			return err
		}
		it := rec.(*types.Item)

		flags := cmd.Flags()
		if flags.Changed("name") {
			it.ItemName, _ = flags.GetString("name")
		}
		if flags.Changed("collection") {
			it.Collection = itemCollection
		}
		if flags.Changed("source") {
			it.Source = itemSource
		}
		if flags.Changed("description") {
			it.Description = itemDescription
		}
		if flags.Changed("price-paid") {
			if it.PricePaid, err = types.ParseMoney("price paid", itemPricePaid); err != nil {
				return err
			}
		}
		if flags.Changed("current-value") {
			if it.CurrentValue, err = types.ParseMoney("current value", itemCurrentValue); err != nil {
				return err
			}
		}
		if flags.Changed("location") {
			it.Location = itemLocation
		}
		if flags.Changed("notes") {
			it.Notes = itemNotes
		}

		if err := scoped.Update(it); err != nil {
			return err
		}
		fmt.Printf("updated item %d\n", it.ItemID)
		return nil
	},
}

func itemStatusCmd(use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := itemID(args[0])
			if err != nil {
				return err
			}
			rec, err := scoped.Get(types.TableItem, id)
			if err != nil {
				return err
			}
			if err := scoped.SetStatus(rec, status); err != nil {
				return err
			}
			fmt.Printf("item %d is now %s\n", id, status)
			return nil
		},
	}
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently remove an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := itemID(args[0])
		if err != nil {
			return err
		}
		rec, err := scoped.Get(types.TableItem, id)
		if err != nil {
			return err
		}
		if err := scoped.Delete(rec); err != nil {
			return err
		}
		fmt.Printf("deleted item %d\n", id)
		return nil
	},
}

func init() {
	itemUpdateCmd.Flags().String("name", "", "item name")
	for _, c := range []*cobra.Command{itemAddCmd, itemUpdateCmd} {
		c.Flags().StringVar(&itemCollection, "collection", "", "collection the item belongs to")
		c.Flags().StringVar(&itemSource, "source", "", "source business name")
		c.Flags().StringVar(&itemDescription, "description", "", "item description")
		c.Flags().StringVar(&itemPricePaid, "price-paid", "", "price paid")
		c.Flags().StringVar(&itemCurrentValue, "current-value", "", "current value")
		c.Flags().StringVar(&itemLocation, "location", "", "storage location")
		c.Flags().StringVar(&itemNotes, "notes", "", "free-form notes")
	}
	itemAddCmd.Flags().StringVar(&itemOwner, "owner", "", "owning user (admin only; defaults to the logged-in user)")
	itemAddCmd.MarkFlagRequired("collection")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemStatusCmd("deactivate", "Deactivate an item", types.StatusInactive))
	itemCmd.AddCommand(itemStatusCmd("reactivate", "Reactivate an item", types.StatusActive))
	itemCmd.AddCommand(itemDeleteCmd)
}
