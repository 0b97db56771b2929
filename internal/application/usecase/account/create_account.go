// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// AccountOutput represents an account in use case outputs.
type AccountOutput struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	account := entity.NewAccount(name)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: toAccountOutput(account)}, nil
}

func toAccountOutput(account *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:        account.ID,
		Name:      account.Name,
		Active:    account.Active,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
