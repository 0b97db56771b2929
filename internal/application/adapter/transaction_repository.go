// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the record-store contract for the
// transactions collection. Aggregations always start from FindAll: the engine
// is a pure function of a complete snapshot, so every recomputation fetches
// the full collection rather than merging partial updates.
type TransactionRepository interface {
	// Create creates a new transaction, assigning its id.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves the full transactions collection.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the store.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByAccount counts transactions referencing the given account.
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)

	// CountByCategory counts transactions referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
