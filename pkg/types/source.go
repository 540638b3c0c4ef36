package types

// Source is a business items are acquired from. BusinessName is the
// identifier and is globally unique. Sources have no cascade dependents.
type Source struct {
	BusinessName string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	City         string
	State        string
	Zip          string
	Email        string
	SourceStatus string
}

var sourceSchema = Schema{
	Table:      TableSource,
	Identifier: "BusinessName",
	Columns: []string{
		"FirstName", "LastName", "Phone", "Address", "City",
		"State", "Zip", "Email", "Status",
	},
}

func (s *Source) Schema() Schema { return sourceSchema }

func (s *Source) ID() any { return s.BusinessName }

func (s *Source) Values() []any {
	return []any{
		s.FirstName, s.LastName, s.Phone, s.Address, s.City,
		s.State, s.Zip, s.Email, s.SourceStatus,
	}
}

func (s *Source) ScanDest() []any {
	return []any{
		&s.BusinessName, &s.FirstName, &s.LastName, &s.Phone, &s.Address,
		&s.City, &s.State, &s.Zip, &s.Email, &s.SourceStatus,
	}
}

func (s *Source) Status() string { return s.SourceStatus }

func (s *Source) SetStatus(status string) { s.SourceStatus = status }
