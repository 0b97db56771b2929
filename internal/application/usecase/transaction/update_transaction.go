// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a transaction update. Nil
// fields are left unchanged. Changing CategoryID or AccountID re-snapshots
// the corresponding display name.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Type        *string
	Description *string
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
	AccountID   *uuid.UUID
	Date        *time.Time
	Notes       *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		transactionType := entity.TransactionType(*input.Type)
		if !entity.IsValidTransactionType(transactionType) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				fmt.Sprintf("invalid transaction type: %s", *input.Type),
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = transactionType
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionRequired,
				"transaction description is required",
				domainerror.ErrDescriptionRequired,
			)
		}
		transaction.Description = description
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				fmt.Sprintf("invalid transaction amount: %s", input.Amount),
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.CategoryID != nil {
		categoryName, err := resolveCategoryName(ctx, uc.categoryRepo, input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		transaction.CategoryID = input.CategoryID
		transaction.CategoryName = categoryName
	}

	if input.AccountID != nil {
		accountName, err := resolveAccountName(ctx, uc.accountRepo, input.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve account: %w", err)
		}
		transaction.AccountID = input.AccountID
		transaction.AccountName = accountName
	}

	if input.Date != nil {
		transaction.Date = input.Date
	}

	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	transaction.UpdatedAt = time.Now()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}
