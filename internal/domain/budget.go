package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultBudgetPeriod is used when a budget is created without a period label
const DefaultBudgetPeriod = "Monthly"

// Budget represents a spending limit for one category
type Budget struct {
	ID        uuid.UUID
	Category  string
	Amount    decimal.Decimal // Spending limit, compared against expense transactions of Category
	Period    string          // Informational label ("Monthly"), not used to filter transactions
	CreatedAt time.Time
}

// Validate ensures the budget can be stored
// Returns an error wrapping ErrInvalidArgument if validation fails
func (b *Budget) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: budget is nil", ErrInvalidArgument)
	}

	if strings.TrimSpace(b.Category) == "" {
		return fmt.Errorf("%w: budget category cannot be empty", ErrInvalidArgument)
	}

	if b.Amount.IsNegative() {
		return fmt.Errorf("%w: budget amount cannot be negative", ErrInvalidArgument)
	}

	return nil
}

// SameSlot reports whether two budgets cover the same category and period.
// Comparison is case-insensitive, a store holds at most one budget per slot.
func (b *Budget) SameSlot(category, period string) bool {
	return strings.EqualFold(b.Category, category) && strings.EqualFold(b.Period, period)
}
