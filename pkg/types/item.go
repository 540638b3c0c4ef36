package types

// Item is a single object in a collection. ItemID is a surrogate identifier
// assigned by the store on insert. Collection must name a collection owned by
// the same User; the application layer enforces that, not the store.
type Item struct {
	ItemID       int64
	ItemName     string
	Collection   string
	Source       string
	User         string
	Description  string
	PricePaid    float64
	CurrentValue float64
	Location     string
	Notes        string
	ItemStatus   string
}

var itemSchema = Schema{
	Table:      TableItem,
	Identifier: "ItemID",
	Surrogate:  true,
	Columns: []string{
		"ItemName", "Collection", "Source", "User", "Description",
		"PricePaid", "CurrentValue", "Location", "Notes", "Status",
	},
	OwnerColumn: "User",
}

func (i *Item) Schema() Schema { return itemSchema }

func (i *Item) ID() any { return i.ItemID }

func (i *Item) Values() []any {
	return []any{
		i.ItemName, i.Collection, i.Source, i.User, i.Description,
		i.PricePaid, i.CurrentValue, i.Location, i.Notes, i.ItemStatus,
	}
}

func (i *Item) ScanDest() []any {
	return []any{
		&i.ItemID, &i.ItemName, &i.Collection, &i.Source, &i.User,
		&i.Description, &i.PricePaid, &i.CurrentValue, &i.Location,
		&i.Notes, &i.ItemStatus,
	}
}

func (i *Item) Status() string { return i.ItemStatus }

func (i *Item) SetStatus(status string) { i.ItemStatus = status }

// SetSurrogateID records the store-assigned identifier after insert.
func (i *Item) SetSurrogateID(id int64) { i.ItemID = id }
