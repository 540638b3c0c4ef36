package types

// Collection groups a user's items. CollectionName is the identifier and is
// unique per owner (case-insensitive); different owners may reuse a name.
type Collection struct {
	CollectionName string
	User           string
	CollStatus     string
}

var collectionSchema = Schema{
	Table:       TableCollection,
	Identifier:  "CollectionName",
	Columns:     []string{"User", "Status"},
	OwnerColumn: "User",
}

func (c *Collection) Schema() Schema { return collectionSchema }

func (c *Collection) ID() any { return c.CollectionName }

func (c *Collection) Values() []any {
	return []any{c.User, c.CollStatus}
}

func (c *Collection) ScanDest() []any {
	return []any{&c.CollectionName, &c.User, &c.CollStatus}
}

func (c *Collection) Status() string { return c.CollStatus }

func (c *Collection) SetStatus(status string) { c.CollStatus = status }
