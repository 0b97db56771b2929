// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the record-store contract for the categories
// collection.
type CategoryRepository interface {
	// Create creates a new category, assigning its id.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the store.
	Delete(ctx context.Context, id uuid.UUID) error
}
