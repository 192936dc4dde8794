package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
)

// DefaultCategories are offered to a new user before they add their own
var DefaultCategories = []string{
	"Groceries",
	"Utilities",
	"Rent",
	"Salary",
	"Entertainment",
	"Transportation",
	"Miscellaneous",
}

// DefaultBudget defines a budget seeded into an empty store
type DefaultBudget struct {
	Category string
	Amount   decimal.Decimal
}

// DefaultBudgets are monthly starting limits for the spending categories
var DefaultBudgets = []DefaultBudget{
	{Category: "Groceries", Amount: decimal.NewFromInt(500)},
	{Category: "Utilities", Amount: decimal.NewFromInt(200)},
	{Category: "Rent", Amount: decimal.NewFromInt(1200)},
	{Category: "Entertainment", Amount: decimal.NewFromInt(150)},
	{Category: "Transportation", Amount: decimal.NewFromInt(100)},
	{Category: "Miscellaneous", Amount: decimal.NewFromInt(100)},
}

// DefaultSeeder fills an empty store with default categories and budgets
type DefaultSeeder struct {
	categoryRepo domain.CategoryRepository
	budgetRepo   domain.BudgetRepository
}

// NewDefaultSeeder creates a new DefaultSeeder instance
func NewDefaultSeeder(categoryRepo domain.CategoryRepository, budgetRepo domain.BudgetRepository) *DefaultSeeder {
	return &DefaultSeeder{
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
}

// Seed inserts the defaults
// Each set is seeded only while its table is empty, so user data is never touched
func (s *DefaultSeeder) Seed(ctx context.Context) error {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		for _, name := range DefaultCategories {
			category := &domain.Category{ID: uuid.New(), Name: name}
			if err := s.categoryRepo.Create(ctx, category); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", name, err)
			}
		}
	}

	budgets, err := s.budgetRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, def := range DefaultBudgets {
		budget := &domain.Budget{
			ID:        uuid.New(),
			Category:  def.Category,
			Amount:    def.Amount,
			Period:    domain.DefaultBudgetPeriod,
			CreatedAt: now,
		}

		// Validate before creating
		if err := budget.Validate(); err != nil {
			return err
		}

		if err := s.budgetRepo.Create(ctx, budget); err != nil {
			return fmt.Errorf("failed to seed budget %s: %w", def.Category, err)
		}
	}

	return nil
}
