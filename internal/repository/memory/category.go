package memory

import (
	"context"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// DefaultCategories are the categories a fresh trivia database is seeded with
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// CategoryRepository implements the domain.CategoryRepository interface.
// Categories are read-only, so no locking is needed.
type CategoryRepository struct {
	categories []domain.Category
}

// NewCategoryRepository creates a repository over categories sorted by ID
func NewCategoryRepository(categories []domain.Category) *CategoryRepository {
	return &CategoryRepository{categories: categories}
}

// List retrieves all categories ordered by ID
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}
