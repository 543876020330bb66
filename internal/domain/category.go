package domain

import (
	"context"

	"github.com/rs/zerolog/log"
)

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"groupName,omitempty"`
	IsIncome  bool   `json:"isIncome"`
	Hidden    bool   `json:"hidden"`
}

// CategoryRepository is the category directory collaborator
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*Category, error)
}

// IndexCategories reshapes a category list into an id-keyed lookup.
// When ids repeat, the first category wins.
func IndexCategories(categories []*Category) map[string]*Category {
	index := make(map[string]*Category, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		if _, exists := index[c.ID]; exists {
			continue
		}
		if c.ID == UncategorizedID {
			log.Warn().Str("category_id", c.ID).Str("name", c.Name).
				Msg("Category id collides with the uncategorized drill-down id")
		}
		index[c.ID] = c
	}
	return index
}
