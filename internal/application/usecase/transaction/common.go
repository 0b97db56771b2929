// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID           uuid.UUID
	Type         entity.TransactionType
	Description  string
	Amount       decimal.Decimal
	CategoryID   *uuid.UUID
	CategoryName string
	AccountID    *uuid.UUID
	AccountName  string
	Date         *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:           t.ID,
		Type:         t.Type,
		Description:  t.Description,
		Amount:       t.Amount,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		AccountID:    t.AccountID,
		AccountName:  t.AccountName,
		Date:         t.Date,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// resolveCategoryName snapshots the category display name at write time. A
// dangling reference is not an error: the gap is logged and the snapshot left
// blank so the transaction lands in the default bucket.
func resolveCategoryName(ctx context.Context, repo adapter.CategoryRepository, id *uuid.UUID) (string, error) {
	if id == nil {
		return "", nil
	}
	category, err := repo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			slog.Warn("Transaction references missing category", "categoryId", id.String())
			return "", nil
		}
		return "", err
	}
	return category.Name, nil
}

// resolveAccountName snapshots the account display name at write time,
// tolerating dangling references the same way as resolveCategoryName.
func resolveAccountName(ctx context.Context, repo adapter.AccountRepository, id *uuid.UUID) (string, error) {
	if id == nil {
		return "", nil
	}
	account, err := repo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			slog.Warn("Transaction references missing account", "accountId", id.String())
			return "", nil
		}
		return "", err
	}
	return account.Name, nil
}
