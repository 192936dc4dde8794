package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger entry, either income or expense
type Transaction struct {
	ID       uuid.UUID
	Amount   decimal.Decimal // ABSOLUTE VALUE (never negative), direction comes from IsIncome
	Category string          // Free text, may be empty
	Date     time.Time
	Notes    string
	IsIncome bool // true = income, false = expense
}

// Validate ensures the transaction adheres to domain rules
// Returns an error wrapping ErrInvalidArgument if validation fails
func (t *Transaction) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: transaction is nil", ErrInvalidArgument)
	}

	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction amount cannot be negative", ErrInvalidArgument)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", ErrInvalidArgument)
	}

	return nil
}

// IsExpense reports whether the transaction counts as spending
func (t *Transaction) IsExpense() bool {
	return !t.IsIncome
}
