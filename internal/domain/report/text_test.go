package report

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

func TestBuildDailyClosureMessage(t *testing.T) {
	date := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returns empty result when the day has no buckets", func(t *testing.T) {
		_, err := BuildDailyClosureMessage(date, aggregation.Balance{}, nil)
		if !errors.Is(err, domainerror.ErrEmptyResult) {
			t.Fatalf("expected ErrEmptyResult, got %v", err)
		}
	})

	t.Run("lays out header, summary and ranked buckets", func(t *testing.T) {
		summary := aggregation.Balance{
			Income:  decimal.NewFromInt(1500),
			Expense: decimal.NewFromInt(300),
			Balance: decimal.NewFromInt(1200),
			Count:   3,
		}
		buckets := []aggregation.Bucket{
			{Name: "Proveedores", Expense: decimal.NewFromInt(300)},
			{Name: "Ventas", Income: decimal.NewFromInt(1500)},
		}

		m, err := BuildDailyClosureMessage(date, summary, buckets)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			"Cierre Diario",
			"10/01/2025",
			"",
			"Ingresos: $1.500,00",
			"Egresos: $300,00",
			"Balance: $1.200,00",
			"",
			"Ventas: +$1.500,00",
			"  Ingresos: $1.500,00",
			"",
			"Proveedores: -$300,00",
			"  Egresos: $300,00",
		}
		if len(m.Lines) != len(want) {
			t.Fatalf("expected %d lines, got %d: %q", len(want), len(m.Lines), m.Lines)
		}
		for i, line := range want {
			if m.Lines[i] != line {
				t.Errorf("line %d: expected %q, got %q", i, line, m.Lines[i])
			}
		}
	})

	t.Run("mixed bucket emits both sub-lines", func(t *testing.T) {
		summary := aggregation.Balance{
			Income:  decimal.NewFromInt(200),
			Expense: decimal.NewFromInt(80),
			Balance: decimal.NewFromInt(120),
		}
		buckets := []aggregation.Bucket{
			{Name: "Caja", Income: decimal.NewFromInt(200), Expense: decimal.NewFromInt(80)},
		}

		m, err := BuildDailyClosureMessage(date, summary, buckets)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tail := m.Lines[len(m.Lines)-3:]
		if tail[0] != "Caja: +$280,00" || tail[1] != "  Ingresos: $200,00" || tail[2] != "  Egresos: $80,00" {
			t.Errorf("unexpected bucket lines: %q", tail)
		}
	})

	t.Run("string joins lines with newlines", func(t *testing.T) {
		m := &Message{Lines: []string{"a", "b"}}
		if m.String() != "a\nb" {
			t.Errorf("expected a\\nb, got %q", m.String())
		}
	})
}
