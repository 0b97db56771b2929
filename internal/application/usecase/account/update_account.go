// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for an account update. Nil fields
// are left unchanged (partial merge, matching the store contract).
type UpdateAccountInput struct {
	ID     uuid.UUID
	Name   *string
	Active *bool
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account update logic, including the
// activate/deactivate toggle.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update. Renaming an account never rewrites the
// denormalized name snapshots on historical transactions.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameRequired,
				"account name is required",
				domainerror.ErrAccountNameRequired,
			)
		}
		account.Name = name
	}

	if input.Active != nil {
		account.Active = *input.Active
	}

	account.UpdatedAt = time.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: toAccountOutput(account)}, nil
}
