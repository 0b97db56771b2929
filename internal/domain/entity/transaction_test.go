package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"nil", nil, "0"},
		{"float64", 12.5, "12.5"},
		{"int", 7, "7"},
		{"numeric string", "1234.56", "1234.56"},
		{"json number", json.Number("99.9"), "99.9"},
		{"decimal passthrough", decimal.NewFromInt(42), "42"},
		{"malformed string", "abc", "0"},
		{"empty string", "", "0"},
		{"whitespace", "   ", "0"},
		{"unsupported type", struct{}{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.raw).String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestEffectiveTime(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("prefers the explicit date", func(t *testing.T) {
		tx := &Transaction{Date: &date, CreatedAt: created}
		got, ok := tx.EffectiveTime()
		if !ok || !got.Equal(date) {
			t.Errorf("expected %s, got %s (ok=%v)", date, got, ok)
		}
	})

	t.Run("falls back to creation time", func(t *testing.T) {
		tx := &Transaction{CreatedAt: created}
		got, ok := tx.EffectiveTime()
		if !ok || !got.Equal(created) {
			t.Errorf("expected %s, got %s (ok=%v)", created, got, ok)
		}
	})

	t.Run("reports no timestamp when both are missing", func(t *testing.T) {
		tx := &Transaction{}
		if _, ok := tx.EffectiveTime(); ok {
			t.Error("expected ok=false for a transaction without timestamps")
		}
	})
}

func TestDisplayCategory(t *testing.T) {
	if got := (&Transaction{CategoryName: "Ventas"}).DisplayCategory(); got != "Ventas" {
		t.Errorf("expected Ventas, got %q", got)
	}
	if got := (&Transaction{}).DisplayCategory(); got != DefaultCategoryName {
		t.Errorf("expected %q, got %q", DefaultCategoryName, got)
	}
	if got := (&Transaction{CategoryName: "  "}).DisplayCategory(); got != DefaultCategoryName {
		t.Errorf("expected %q, got %q", DefaultCategoryName, got)
	}
}

func TestIsValidTransactionType(t *testing.T) {
	if !IsValidTransactionType(TransactionTypeIncome) || !IsValidTransactionType(TransactionTypeExpense) {
		t.Error("expected income and expense to be valid")
	}
	if IsValidTransactionType("transfer") {
		t.Error("expected transfer to be invalid")
	}
}
