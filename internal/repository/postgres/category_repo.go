package postgres

import (
	"context"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getAllCategories = `
SELECT c.id, c.name, g.name, c.is_income, c.hidden
FROM categories c
LEFT JOIN category_groups g ON g.id = c.group_id AND g.deleted_at IS NULL
WHERE c.deleted_at IS NULL
ORDER BY COALESCE(g.sort_order, 0), c.sort_order, c.name`

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// GetAll retrieves every non-deleted category
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, getAllCategories)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Category, error) {
		var (
			c         domain.Category
			groupName pgtype.Text
		)
		if err := row.Scan(&c.ID, &c.Name, &groupName, &c.IsIncome, &c.Hidden); err != nil {
			return nil, err
		}
		c.GroupName = pgTextToString(groupName)
		return &c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return categories, nil
}
