package domain

import (
	"context"

	"github.com/google/uuid"
)

// TransactionReader is the read contract the report engine consumes
type TransactionReader interface {
	// List retrieves all transactions, unfiltered and in no particular order
	List(ctx context.Context) ([]*Transaction, error)
}

// TransactionRepository defines the interface for transaction persistence operations
type TransactionRepository interface {
	TransactionReader

	// GetByID retrieves a transaction by its ID
	// Returns an error wrapping ErrNotFound if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// Create creates a new transaction
	Create(ctx context.Context, tx *Transaction) error

	// Update overwrites every field of an existing transaction
	Update(ctx context.Context, tx *Transaction) error

	// Delete removes a transaction
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetReader is the read contract the report engine consumes
type BudgetReader interface {
	// List retrieves all budgets in no particular order
	List(ctx context.Context) ([]*Budget, error)
}

// BudgetRepository defines the interface for budget persistence operations
type BudgetRepository interface {
	BudgetReader

	// GetByID retrieves a budget by its ID
	// Returns an error wrapping ErrNotFound if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Budget, error)

	// Create creates a new budget
	Create(ctx context.Context, budget *Budget) error

	// Update overwrites category, amount and period of an existing budget
	Update(ctx context.Context, budget *Budget) error

	// Delete removes a budget
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	// List retrieves all categories ordered by name
	List(ctx context.Context) ([]*Category, error)

	// Create creates a new category
	Create(ctx context.Context, category *Category) error
}

// OverrunNotifier is told when a budget crosses its limit.
// Reports call it once per crossing; a restart may repeat the alert, so consumers key on BudgetID.
type OverrunNotifier interface {
	NotifyOverrun(ctx context.Context, progress BudgetProgress) error
}
