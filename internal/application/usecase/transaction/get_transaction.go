// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
)

// GetTransactionUseCase handles retrieving a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves a transaction by id.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*TransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTransactionOutput(transaction), nil
}
