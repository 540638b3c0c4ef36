package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMoney converts a caller-supplied price string to a float. An empty
// string is treated as zero, matching the optional price fields on items.
// Returns an error wrapping ErrValidation when the value is not numeric or
// is negative.
func ParseMoney(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric, got %q: %w", field, value, ErrValidation)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s must not be negative: %w", field, ErrValidation)
	}
	return f, nil
}

// Validate checks a user for required fields and recognized role and status
// values before it is handed to the engine.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required: %w", ErrValidation)
	}
	if u.Password == "" {
		return fmt.Errorf("password is required: %w", ErrValidation)
	}
	if !ValidRole(u.Role) {
		return fmt.Errorf("role must be %s or %s: %w", RoleAdmin, RoleUser, ErrValidation)
	}
	if u.UserStatus != "" && !ValidStatus(u.UserStatus) {
		return ErrInvalidStatus
	}
	return nil
}

// Validate checks a collection for required fields.
func (c *Collection) Validate() error {
	if strings.TrimSpace(c.CollectionName) == "" {
		return fmt.Errorf("collection name is required: %w", ErrValidation)
	}
	if strings.TrimSpace(c.User) == "" {
		return fmt.Errorf("collection owner is required: %w", ErrValidation)
	}
	return nil
}

// Validate checks an item for required fields.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.ItemName) == "" {
		return fmt.Errorf("item name is required: %w", ErrValidation)
	}
	if strings.TrimSpace(i.Collection) == "" {
		return fmt.Errorf("item collection is required: %w", ErrValidation)
	}
	if strings.TrimSpace(i.User) == "" {
		return fmt.Errorf("item owner is required: %w", ErrValidation)
	}
	return nil
}

// Validate checks a source for required fields.
func (s *Source) Validate() error {
	if strings.TrimSpace(s.BusinessName) == "" {
		return fmt.Errorf("business name is required: %w", ErrValidation)
	}
	return nil
}
