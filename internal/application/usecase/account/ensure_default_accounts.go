// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// EnsureDefaultAccountsUseCase seeds the default account set when the
// accounts collection is empty.
type EnsureDefaultAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewEnsureDefaultAccountsUseCase creates a new EnsureDefaultAccountsUseCase instance.
func NewEnsureDefaultAccountsUseCase(accountRepo adapter.AccountRepository) *EnsureDefaultAccountsUseCase {
	return &EnsureDefaultAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute creates the default accounts if none exist yet.
func (uc *EnsureDefaultAccountsUseCase) Execute(ctx context.Context) error {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) > 0 {
		return nil
	}

	for _, name := range entity.DefaultAccountNames {
		if err := uc.accountRepo.Create(ctx, entity.NewAccount(name)); err != nil {
			return fmt.Errorf("failed to seed account %q: %w", name, err)
		}
	}

	slog.Info("Seeded default accounts", "count", len(entity.DefaultAccountNames))
	return nil
}
