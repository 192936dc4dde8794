package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/momoney-backend/internal/domain"
)

const budgetColumns = `id, category, amount, period, created_at`

// budgetRepository implements domain.BudgetRepository
type budgetRepository struct {
	db *DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *DB) domain.BudgetRepository {
	return &budgetRepository{db: db}
}

// List retrieves all budgets
func (r *budgetRepository) List(ctx context.Context) ([]*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ORDER BY category, period`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := make([]*domain.Budget, 0)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}

// GetByID retrieves a budget by its ID
func (r *budgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Budget, error) {
	query := r.db.rebind(`SELECT ` + budgetColumns + ` FROM budgets WHERE id = ?`)

	budget, err := scanBudget(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("budget %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return budget, nil
}

// Create creates a new budget
// A second budget for the same category and period fails with domain.ErrConflict
func (r *budgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	query := r.db.rebind(`
		INSERT INTO budgets (id, category, amount, period, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		budget.ID,
		budget.Category,
		budget.Amount.String(),
		budget.Period,
		formatTime(budget.CreatedAt),
	)
	if err != nil {
		return writeError("create budget", err)
	}

	return nil
}

// Update overwrites category, amount and period of an existing budget
func (r *budgetRepository) Update(ctx context.Context, budget *domain.Budget) error {
	query := r.db.rebind(`
		UPDATE budgets
		SET category = ?, amount = ?, period = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		budget.Category,
		budget.Amount.String(),
		budget.Period,
		budget.ID,
	)
	if err != nil {
		return writeError("update budget", err)
	}

	return expectAffected(result, "budget", budget.ID)
}

// Delete removes a budget
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := r.db.rebind(`DELETE FROM budgets WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return expectAffected(result, "budget", id)
}

func scanBudget(row rowScanner) (*domain.Budget, error) {
	var budget domain.Budget
	var amountStr, createdStr string

	err := row.Scan(
		&budget.ID,
		&budget.Category,
		&amountStr,
		&budget.Period,
		&createdStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan budget: %w", err)
	}

	if budget.Amount, err = parseAmount("amount", amountStr); err != nil {
		return nil, err
	}

	if budget.CreatedAt, err = parseTime("created_at", createdStr); err != nil {
		return nil, err
	}

	return &budget, nil
}
