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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        string
	Description string
	Amount      decimal.Decimal
	CategoryID  *uuid.UUID
	AccountID   *uuid.UUID
	Date        *time.Time
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation, snapshotting the category and
// account display names at write time.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transactionType := entity.TransactionType(input.Type)
	if !entity.IsValidTransactionType(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type: %s", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionRequired,
			"transaction description is required",
			domainerror.ErrDescriptionRequired,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("invalid transaction amount: %s", input.Amount),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	categoryName, err := resolveCategoryName(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	accountName, err := resolveAccountName(ctx, uc.accountRepo, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	transaction := entity.NewTransaction(
		transactionType,
		description,
		input.Amount,
		input.CategoryID,
		categoryName,
		input.AccountID,
		accountName,
		input.Date,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}
