package budget

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/simaogato/momoney-backend/internal/usecase/report"
	"github.com/sirupsen/logrus"
)

// BudgetInput represents the input for adding or editing a budget
type BudgetInput struct {
	Category string
	Amount   decimal.Decimal
	Period   string // Optional: defaults to domain.DefaultBudgetPeriod
}

// Item is a budget row together with its live spending state
type Item struct {
	Budget *domain.Budget
	Usage  domain.BudgetProgress
}

// Progress implements domain.BudgetLike
func (i *Item) Progress() float64 {
	return i.Usage.Progress()
}

// IsOverBudget implements domain.BudgetLike
func (i *Item) IsOverBudget() bool {
	return i.Usage.IsOverBudget()
}

// BudgetService handles budget management operations
type BudgetService struct {
	BudgetRepo      domain.BudgetRepository
	TransactionRepo domain.TransactionReader
	Logger          logrus.FieldLogger
}

// NewBudgetService creates a new BudgetService instance
func NewBudgetService(budgetRepo domain.BudgetRepository, transactionRepo domain.TransactionReader, logger logrus.FieldLogger) *BudgetService {
	return &BudgetService{
		BudgetRepo:      budgetRepo,
		TransactionRepo: transactionRepo,
		Logger:          logger.WithField("component", "budget"),
	}
}

// Add creates a budget
// Logic:
//  1. Normalize input (trim, default period) and validate
//  2. Reject a second budget for the same category and period (case-insensitive)
//  3. Save using BudgetRepo.Create
func (s *BudgetService) Add(ctx context.Context, input BudgetInput) (*domain.Budget, error) {
	budget := &domain.Budget{
		ID:        uuid.New(),
		Category:  strings.TrimSpace(input.Category),
		Amount:    input.Amount,
		Period:    normalizePeriod(input.Period),
		CreatedAt: time.Now().UTC(),
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureFreeSlot(ctx, budget); err != nil {
		return nil, err
	}

	if err := s.BudgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"id":       budget.ID,
		"category": budget.Category,
		"amount":   budget.Amount.StringFixed(2),
	}).Info("budget added")

	return budget, nil
}

// Update changes category, amount and period of an existing budget
func (s *BudgetService) Update(ctx context.Context, id uuid.UUID, input BudgetInput) (*domain.Budget, error) {
	existing, err := s.BudgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	budget := &domain.Budget{
		ID:        existing.ID,
		Category:  strings.TrimSpace(input.Category),
		Amount:    input.Amount,
		Period:    normalizePeriod(input.Period),
		CreatedAt: existing.CreatedAt,
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureFreeSlot(ctx, budget); err != nil {
		return nil, err
	}

	if err := s.BudgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return budget, nil
}

// Delete removes a budget; an unknown id is reported as not found
func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.BudgetRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.BudgetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.Logger.WithField("id", id).Info("budget deleted")
	return nil
}

// Get returns one budget with the amount spent against it so far
func (s *BudgetService) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	budget, err := s.BudgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	transactions, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return newItem(budget, transactions)
}

// List returns every budget with its live progress, ordered by category
func (s *BudgetService) List(ctx context.Context) ([]*Item, error) {
	budgets, err := s.BudgetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	transactions, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	items := make([]*Item, 0, len(budgets))
	for _, budget := range budgets {
		item, err := newItem(budget, transactions)
		if err != nil {
			s.Logger.WithError(err).Warn("skipped invalid budget")
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].Budget.Category), strings.ToLower(items[j].Budget.Category)
		if a != b {
			return a < b
		}
		return items[i].Budget.Period < items[j].Budget.Period
	})

	return items, nil
}

func (s *BudgetService) ensureFreeSlot(ctx context.Context, budget *domain.Budget) error {
	existing, err := s.BudgetRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list budgets: %w", err)
	}

	for _, other := range existing {
		if other == nil || other.ID == budget.ID {
			continue
		}
		if other.SameSlot(budget.Category, budget.Period) {
			return fmt.Errorf("%w: a %s budget for %q already exists", domain.ErrConflict, other.Period, other.Category)
		}
	}

	return nil
}

func newItem(budget *domain.Budget, transactions []*domain.Transaction) (*Item, error) {
	usage, err := report.ComputeBudgetProgress(budget, transactions)
	if err != nil {
		return nil, err
	}
	return &Item{Budget: budget, Usage: usage}, nil
}

func normalizePeriod(period string) string {
	period = strings.TrimSpace(period)
	if period == "" {
		return domain.DefaultBudgetPeriod
	}
	return period
}
