package category

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/simaogato/momoney-backend/internal/domain"
)

// CategoryService manages the category names offered for budgets and transactions
type CategoryService struct {
	CategoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{
		CategoryRepo: categoryRepo,
	}
}

// List returns all categories ordered by name
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	return categories, nil
}

// Add creates a category with a trimmed name
// Returns an error wrapping domain.ErrConflict if the name exists in any letter case
func (s *CategoryService) Add(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{
		ID:   uuid.New(),
		Name: strings.TrimSpace(name),
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, other := range existing {
		if strings.EqualFold(other.Name, category.Name) {
			return nil, fmt.Errorf("%w: category %q already exists", domain.ErrConflict, other.Name)
		}
	}

	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
