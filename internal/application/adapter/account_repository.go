// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// AccountRepository defines the record-store contract for the accounts
// collection.
type AccountRepository interface {
	// Create creates a new account, assigning its id.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAll retrieves all accounts ordered by name.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update updates an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account from the store.
	Delete(ctx context.Context, id uuid.UUID) error
}
