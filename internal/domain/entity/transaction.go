// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Default bucket labels used when a transaction has no usable category or
// account reference. The denormalized snapshot is authoritative: a rename of
// the referenced category or account never rewrites historical transactions.
const (
	DefaultCategoryName = "Sin categoría"
	DefaultAccountName  = "Sin cuenta"
)

// Transaction represents a single cash movement. Amount is always a positive
// magnitude; direction is carried by Type, never by the sign of Amount.
// CategoryName and AccountName are write-time snapshots of the referenced
// records' display names.
type Transaction struct {
	ID           uuid.UUID
	Type         TransactionType
	Description  string
	Amount       decimal.Decimal
	CategoryID   *uuid.UUID
	CategoryName string
	AccountID    *uuid.UUID
	AccountName  string
	Date         *time.Time // local midnight of the movement day
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	description string,
	amount decimal.Decimal,
	categoryID *uuid.UUID,
	categoryName string,
	accountID *uuid.UUID,
	accountName string,
	date *time.Time,
	notes string,
) *Transaction {
	now := time.Now()

	return &Transaction{
		ID:           uuid.New(),
		Type:         transactionType,
		Description:  description,
		Amount:       amount,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		AccountID:    accountID,
		AccountName:  accountName,
		Date:         date,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// EffectiveTime returns the timestamp used for date filtering and period
// grouping: Date when present, otherwise CreatedAt. The second return value is
// false when the transaction carries neither, in which case it is excluded
// from every date-bounded aggregate but still participates in lifetime sums.
func (t *Transaction) EffectiveTime() (time.Time, bool) {
	if t.Date != nil && !t.Date.IsZero() {
		return *t.Date, true
	}
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt, true
	}
	return time.Time{}, false
}

// DisplayCategory returns the denormalized category name, falling back to the
// default bucket when the snapshot is blank or was never taken.
func (t *Transaction) DisplayCategory() string {
	if strings.TrimSpace(t.CategoryName) == "" {
		return DefaultCategoryName
	}
	return t.CategoryName
}

// IsValidTransactionType reports whether the given type is one of the two
// supported transaction types.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeExpense || transactionType == TransactionTypeIncome
}

// ParseAmount coerces a loosely-typed amount value into a decimal. Malformed
// values (non-numeric strings, empty values, nil) become zero instead of an
// error, so a record with a broken amount still counts in count-based
// aggregates while contributing nothing to any sum.
func ParseAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return parseAmountString(v.String())
	case string:
		return parseAmountString(v)
	default:
		return decimal.Zero
	}
}

func parseAmountString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
