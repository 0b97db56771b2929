// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
)

// GetAccountUseCase handles retrieving a single account.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves an account by id.
func (uc *GetAccountUseCase) Execute(ctx context.Context, id uuid.UUID) (*AccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccountOutput(account), nil
}
