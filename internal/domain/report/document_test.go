package report

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

func movement(hour int, description string, amount int64) MovementRow {
	return MovementRow{
		Time:        time.Date(2025, time.January, 10, hour, 0, 0, 0, time.UTC),
		Category:    "Ventas",
		Description: description,
		Account:     "Caja",
		Type:        entity.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(amount),
	}
}

func TestBuildDailyClosureDocument(t *testing.T) {
	date := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	summary := aggregation.Balance{
		Income:  decimal.NewFromInt(100),
		Expense: decimal.Zero,
		Balance: decimal.NewFromInt(100),
	}

	t.Run("returns empty result when the day has no movements", func(t *testing.T) {
		_, err := BuildDailyClosureDocument(date, summary, nil, nil)
		if !errors.Is(err, domainerror.ErrEmptyResult) {
			t.Fatalf("expected ErrEmptyResult, got %v", err)
		}
	})

	t.Run("lays out a single page in order", func(t *testing.T) {
		accounts := []AccountRow{{
			Name:       "Caja",
			Opening:    decimal.NewFromInt(500),
			Closing:    decimal.NewFromInt(600),
			Difference: decimal.NewFromInt(100),
		}}
		movements := []MovementRow{
			movement(15, "Venta tarde", 40),
			movement(9, "Venta mañana", 60),
		}

		doc, err := BuildDailyClosureDocument(date, summary, accounts, movements)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if doc.Title != "Cierre Diario" || doc.DateLabel != "10/01/2025" {
			t.Errorf("unexpected header: %q %q", doc.Title, doc.DateLabel)
		}
		if doc.Orientation != "portrait" || doc.PageWidth != PageWidth || doc.PageHeight != PageHeight {
			t.Errorf("unexpected page geometry: %s %v x %v", doc.Orientation, doc.PageWidth, doc.PageHeight)
		}
		if len(doc.Pages) != 1 {
			t.Fatalf("expected 1 page, got %d", len(doc.Pages))
		}

		blocks := doc.Pages[0].Blocks
		wantKinds := []BlockKind{
			BlockTitle,
			BlockDate,
			BlockSummary,
			BlockHeading,
			BlockTableHeader,
			BlockTableRow,
			BlockHeading,
			BlockTableHeader,
			BlockTableRow,
			BlockTableRow,
			BlockSignature,
		}
		if len(blocks) != len(wantKinds) {
			t.Fatalf("expected %d blocks, got %d", len(wantKinds), len(blocks))
		}
		for i, kind := range wantKinds {
			if blocks[i].Kind != kind {
				t.Errorf("block %d: expected %s, got %s", i, kind, blocks[i].Kind)
			}
		}

		if blocks[2].Summary.Income != "$100,00" {
			t.Errorf("unexpected summary income: %q", blocks[2].Summary.Income)
		}
		if blocks[5].Cells[1][0] != "500,00" || blocks[5].Cells[2][0] != "600,00" {
			t.Errorf("unexpected account cells: %v", blocks[5].Cells)
		}

		// Movements come out sorted ascending by time regardless of input order.
		if blocks[8].Cells[0][0] != "09:00" || blocks[9].Cells[0][0] != "15:00" {
			t.Errorf("movements not sorted: %q then %q", blocks[8].Cells[0][0], blocks[9].Cells[0][0])
		}
		if blocks[8].Cells[4][0] != "+$60,00" {
			t.Errorf("unexpected amount cell: %q", blocks[8].Cells[4][0])
		}
	})

	t.Run("breaks pages and redraws the table header", func(t *testing.T) {
		var movements []MovementRow
		for i := 0; i < 100; i++ {
			movements = append(movements, movement(i%24, fmt.Sprintf("Movimiento %d", i), 10))
		}

		doc, err := BuildDailyClosureDocument(date, summary, nil, movements)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(doc.Pages) < 2 {
			t.Fatalf("expected multiple pages, got %d", len(doc.Pages))
		}
		for p := 1; p < len(doc.Pages); p++ {
			first := doc.Pages[p].Blocks[0]
			if first.Kind != BlockTableHeader && first.Kind != BlockSignature {
				t.Errorf("page %d starts with %s, expected redrawn table header", p, first.Kind)
			}
			if first.Kind == BlockTableHeader && first.Table != TableMovements {
				t.Errorf("page %d header is for table %q", p, first.Table)
			}
		}

		rows := 0
		for _, page := range doc.Pages {
			for _, block := range page.Blocks {
				if block.Kind == BlockTableRow {
					rows++
				}
			}
		}
		if rows != 100 {
			t.Errorf("expected 100 rows across pages, got %d", rows)
		}
	})

	t.Run("wraps long descriptions onto multiple lines", func(t *testing.T) {
		long := movement(10, "Descripción extraordinariamente larga que no entra en una sola línea de la celda", 10)

		doc, err := BuildDailyClosureDocument(date, summary, nil, []MovementRow{long})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var row *Block
		for i := range doc.Pages[0].Blocks {
			if doc.Pages[0].Blocks[i].Kind == BlockTableRow {
				row = &doc.Pages[0].Blocks[i]
				break
			}
		}
		if row == nil {
			t.Fatal("no table row found")
		}
		if len(row.Cells[2]) < 2 {
			t.Errorf("expected wrapped description, got %v", row.Cells[2])
		}
	})
}
