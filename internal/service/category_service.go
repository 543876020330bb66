package service

import (
	"context"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
)

// CategoryService exposes the category directory
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetCategories returns all categories, skipping hidden ones unless includeHidden is set
func (s *CategoryService) GetCategories(ctx context.Context, includeHidden bool) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	result := make([]*domain.Category, 0, len(categories))
	for _, c := range categories {
		if c == nil || (c.Hidden && !includeHidden) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}
