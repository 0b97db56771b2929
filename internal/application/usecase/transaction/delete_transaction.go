// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
)

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes a transaction by id.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.transactionRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
