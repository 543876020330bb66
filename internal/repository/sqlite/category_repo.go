package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

const getAllCategories = `
SELECT c.id, c.name, COALESCE(g.name, ''), c.is_income, c.hidden
FROM categories c
LEFT JOIN category_groups g ON g.id = c.group_id AND g.deleted_at IS NULL
WHERE c.deleted_at IS NULL
ORDER BY COALESCE(g.sort_order, 0), c.sort_order, c.name`

// CategoryRepository implements domain.CategoryRepository on a SQLite file
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll retrieves every non-deleted category
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, getAllCategories)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.GroupName, &c.IsIncome, &c.Hidden); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}
