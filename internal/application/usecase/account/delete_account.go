// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute deletes an account. Accounts still referenced by transactions are
// never hard-deleted; callers deactivate them instead.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.accountRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := uc.transactionRepo.CountByAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasTransactions,
			fmt.Sprintf("account has %d associated transactions", count),
			domainerror.ErrAccountHasTransactions,
		)
	}

	if err := uc.accountRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
