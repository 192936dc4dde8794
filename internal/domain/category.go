package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UncategorizedLabel is shown for expenses that carry no category
const UncategorizedLabel = "Uncategorized"

// Category is a named label offered when creating budgets and transactions
type Category struct {
	ID   uuid.UUID
	Name string
}

// Validate ensures the category name is usable
func (c *Category) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: category is nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: category name cannot be empty", ErrInvalidArgument)
	}
	return nil
}

// DisplayCategory returns the label a category is reported under.
// Only an empty name collapses into UncategorizedLabel.
func DisplayCategory(name string) string {
	if name == "" {
		return UncategorizedLabel
	}
	return name
}
