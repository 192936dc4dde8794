package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockBudgetRepository is a mock implementation of BudgetRepository
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) List(ctx context.Context) ([]*domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) Update(ctx context.Context, budget *domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDefaultSeeder_Seed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	mockCategoryRepo := new(MockCategoryRepository)
	mockBudgetRepo := new(MockBudgetRepository)
	seeder := NewDefaultSeeder(mockCategoryRepo, mockBudgetRepo)

	mockCategoryRepo.On("List", ctx).Return([]*domain.Category{}, nil)
	mockBudgetRepo.On("List", ctx).Return([]*domain.Budget{}, nil)
	mockCategoryRepo.On("Create", ctx, mock.Anything).Return(nil)
	limits := map[string]decimal.Decimal{}
	mockBudgetRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Budget) bool {
		return b.Period == domain.DefaultBudgetPeriod && b.Amount.IsPositive()
	})).Run(func(args mock.Arguments) {
		b := args.Get(1).(*domain.Budget)
		limits[b.Category] = b.Amount
	}).Return(nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	assert.True(t, limits["Rent"].Equal(decimal.NewFromInt(1200)))
	assert.True(t, limits["Groceries"].Equal(decimal.NewFromInt(500)))
	assert.NotContains(t, limits, "Salary")
	mockCategoryRepo.AssertNumberOfCalls(t, "Create", len(DefaultCategories))
	mockBudgetRepo.AssertNumberOfCalls(t, "Create", len(DefaultBudgets))
}

func TestDefaultSeeder_Seed_ExistingDataUntouched(t *testing.T) {
	ctx := context.Background()
	mockCategoryRepo := new(MockCategoryRepository)
	mockBudgetRepo := new(MockBudgetRepository)
	seeder := NewDefaultSeeder(mockCategoryRepo, mockBudgetRepo)

	mockCategoryRepo.On("List", ctx).Return([]*domain.Category{{ID: uuid.New(), Name: "Travel"}}, nil)
	mockBudgetRepo.On("List", ctx).Return([]*domain.Budget{{ID: uuid.New(), Category: "Travel"}}, nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockCategoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockBudgetRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDefaultSeeder_Seed_OnlyBudgetsMissing(t *testing.T) {
	ctx := context.Background()
	mockCategoryRepo := new(MockCategoryRepository)
	mockBudgetRepo := new(MockBudgetRepository)
	seeder := NewDefaultSeeder(mockCategoryRepo, mockBudgetRepo)

	mockCategoryRepo.On("List", ctx).Return([]*domain.Category{{ID: uuid.New(), Name: "Groceries"}}, nil)
	mockBudgetRepo.On("List", ctx).Return([]*domain.Budget{}, nil)
	mockBudgetRepo.On("Create", ctx, mock.Anything).Return(nil)

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	mockCategoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockBudgetRepo.AssertNumberOfCalls(t, "Create", len(DefaultBudgets))
}

func TestDefaultSeeder_Seed_CreateError(t *testing.T) {
	ctx := context.Background()
	mockCategoryRepo := new(MockCategoryRepository)
	mockBudgetRepo := new(MockBudgetRepository)
	seeder := NewDefaultSeeder(mockCategoryRepo, mockBudgetRepo)

	mockCategoryRepo.On("List", ctx).Return([]*domain.Category{}, nil)
	mockCategoryRepo.On("Create", ctx, mock.Anything).Return(errors.New("read-only database"))

	err := seeder.Seed(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed category Groceries")
	mockBudgetRepo.AssertNotCalled(t, "List", mock.Anything)
}
