package sqlstore

import (
	"context"
	"fmt"

	"github.com/simaogato/momoney-backend/internal/domain"
)

// categoryRepository implements domain.CategoryRepository
type categoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

// List retrieves all categories ordered by name
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// Create creates a new category
// Names are unique regardless of letter case
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := r.db.rebind(`INSERT INTO categories (id, name) VALUES (?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, category.ID, category.Name); err != nil {
		return writeError("create category", err)
	}

	return nil
}
