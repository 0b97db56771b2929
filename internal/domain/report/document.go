package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// Page geometry in millimeters, A4 portrait. Content flows from contentTop
// and a new page begins whenever the next block would land past
// contentBottom, with table headers redrawn on continuation pages.
const (
	PageWidth     = 210.0
	PageHeight    = 297.0
	contentTop    = 20.0
	contentBottom = 270.0

	titleHeight    = 10.0
	dateHeight     = 15.0
	summaryHeight  = 18.0
	headingHeight  = 8.0
	tableGap       = 10.0
	headerHeight   = 8.0
	signatureSpace = 20.0

	accountLineHeight  = 5.0
	movementLineHeight = 4.5
	minRowHeight       = 6.0

	// Approximate glyph widths used for cell wrapping, per table font size.
	accountCharWidth  = 2.1
	movementCharWidth = 1.9
)

// Table identifiers inside a Document.
const (
	TableAccounts  = "accounts"
	TableMovements = "movements"
)

// BlockKind discriminates the block variants of a printable page.
type BlockKind string

const (
	BlockTitle       BlockKind = "title"
	BlockDate        BlockKind = "date"
	BlockSummary     BlockKind = "summary"
	BlockHeading     BlockKind = "heading"
	BlockTableHeader BlockKind = "table_header"
	BlockTableRow    BlockKind = "table_row"
	BlockSignature   BlockKind = "signature"
)

// Block is one laid-out element of a page. Only the fields relevant to its
// kind are populated.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Summary *Summary  `json:"summary,omitempty"`
	Table   string    `json:"table,omitempty"`
	Columns []string  `json:"columns,omitempty"`
	Cells   [][]string `json:"cells,omitempty"` // one wrapped-line slice per column
}

// Summary is the three-up income/expense/balance block.
type Summary struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// Page holds the blocks that fit between the content boundaries.
type Page struct {
	Blocks []Block `json:"blocks"`
}

// Document is the printable output model: explicit page size and orientation,
// openable directly in a system print dialog by the consuming pipeline.
type Document struct {
	Title       string  `json:"title"`
	DateLabel   string  `json:"date_label"`
	PageWidth   float64 `json:"page_width"`
	PageHeight  float64 `json:"page_height"`
	Orientation string  `json:"orientation"`
	Pages       []Page  `json:"pages"`
}

// AccountRow is one line of the account-summary table.
type AccountRow struct {
	Name       string
	Opening    decimal.Decimal
	Closing    decimal.Decimal
	Difference decimal.Decimal
}

// MovementRow is one line of the movements table.
type MovementRow struct {
	Time        time.Time
	Category    string
	Description string
	Account     string
	Type        entity.TransactionType
	Amount      decimal.Decimal
}

var (
	accountColumns   = []string{"Nombre de Cuenta", "Saldo Inicial", "Saldo Final", "Diferencia"}
	accountWidths    = []float64{70, 40, 40, 40}
	movementColumns  = []string{"Hora", "Categoría", "Descripción", "Cuenta", "$ Monto"}
	movementWidths   = []float64{25, 40, 60, 40, 30}
	signatureCaption = "Firma del Responsable"
)

// BuildDailyClosureDocument lays out the daily closure report: title, date,
// three-up summary, account-summary table and the day's movements sorted
// ascending by effective time. Returns ErrEmptyResult when the day has no
// movements so callers never print a zero-totals closure.
func BuildDailyClosureDocument(
	date time.Time,
	summary aggregation.Balance,
	accounts []AccountRow,
	movements []MovementRow,
) (*Document, error) {
	if len(movements) == 0 {
		return nil, domainerror.ErrEmptyResult
	}

	sorted := make([]MovementRow, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	b := newDocBuilder("Cierre Diario", date.Format("02/01/2006"))

	b.add(Block{Kind: BlockTitle, Text: b.doc.Title}, titleHeight)
	b.add(Block{Kind: BlockDate, Text: b.doc.DateLabel}, dateHeight)
	b.add(Block{Kind: BlockSummary, Summary: &Summary{
		Income:  FormatAmount(summary.Income),
		Expense: FormatAmount(summary.Expense),
		Balance: FormatAmount(summary.Balance),
	}}, summaryHeight)

	if len(accounts) > 0 {
		b.add(Block{Kind: BlockHeading, Text: "Resumen de Cuentas"}, headingHeight)
		b.startTable(TableAccounts, accountColumns)
		for _, row := range accounts {
			b.addRow(
				[]string{
					row.Name,
					FormatNumber(row.Opening),
					FormatNumber(row.Closing),
					FormatNumber(row.Difference),
				},
				accountWidths, accountCharWidth, accountLineHeight,
			)
		}
		b.endTable(tableGap)
	}

	b.add(Block{Kind: BlockHeading, Text: "Movimientos"}, headingHeight)
	b.startTable(TableMovements, movementColumns)
	for _, row := range sorted {
		b.addRow(
			[]string{
				row.Time.Format("15:04"),
				row.Category,
				row.Description,
				row.Account,
				FormatSignedAmount(row.Type, row.Amount),
			},
			movementWidths, movementCharWidth, movementLineHeight,
		)
	}
	b.endTable(tableGap)

	b.addSignature()

	return b.doc, nil
}

// docBuilder flows blocks onto pages, tracking the vertical cursor and
// redrawing the active table header after a page break.
type docBuilder struct {
	doc         *Document
	page        Page
	y           float64
	activeTable string
	activeCols  []string
}

func newDocBuilder(title, dateLabel string) *docBuilder {
	return &docBuilder{
		doc: &Document{
			Title:       title,
			DateLabel:   dateLabel,
			PageWidth:   PageWidth,
			PageHeight:  PageHeight,
			Orientation: "portrait",
		},
		y: contentTop,
	}
}

func (b *docBuilder) add(block Block, height float64) {
	if b.y+height > contentBottom {
		b.breakPage()
	}
	b.page.Blocks = append(b.page.Blocks, block)
	b.y += height
}

func (b *docBuilder) startTable(table string, columns []string) {
	b.activeTable = table
	b.activeCols = columns
	b.add(Block{Kind: BlockTableHeader, Table: table, Columns: columns}, headerHeight)
}

func (b *docBuilder) endTable(gap float64) {
	b.activeTable = ""
	b.activeCols = nil
	b.y += gap
}

// addRow wraps each cell to its column width and advances the cursor by the
// tallest cell, starting a new page (with the header redrawn) when the row
// would cross the content boundary.
func (b *docBuilder) addRow(cells []string, widths []float64, charWidth, lineHeight float64) {
	wrapped := make([][]string, len(cells))
	height := minRowHeight
	for i, cell := range cells {
		wrapped[i] = wrapCell(cell, widths[i], charWidth)
		if h := float64(len(wrapped[i])) * lineHeight; h > height {
			height = h
		}
	}

	if b.y+height > contentBottom {
		b.breakPage()
		if b.activeTable != "" {
			b.page.Blocks = append(b.page.Blocks, Block{
				Kind:    BlockTableHeader,
				Table:   b.activeTable,
				Columns: b.activeCols,
			})
			b.y += headerHeight
		}
	}

	b.page.Blocks = append(b.page.Blocks, Block{
		Kind:  BlockTableRow,
		Table: b.activeTable,
		Cells: wrapped,
	})
	b.y += height
}

func (b *docBuilder) addSignature() {
	if b.y+signatureSpace > contentBottom {
		b.breakPage()
	}
	b.page.Blocks = append(b.page.Blocks, Block{Kind: BlockSignature, Text: signatureCaption})
	b.y += signatureSpace
	b.flush()
}

func (b *docBuilder) breakPage() {
	b.doc.Pages = append(b.doc.Pages, b.page)
	b.page = Page{}
	b.y = contentTop
}

func (b *docBuilder) flush() {
	if len(b.page.Blocks) > 0 {
		b.doc.Pages = append(b.doc.Pages, b.page)
		b.page = Page{}
	}
}

// wrapCell splits text into lines that fit the column width, breaking on
// words where possible and hard-breaking words longer than a line.
func wrapCell(text string, width, charWidth float64) []string {
	maxChars := int((width - 2) / charWidth)
	if maxChars < 1 {
		maxChars = 1
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return []string{text}
	}

	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		switch {
		case len(line) == 0 && len(w) <= maxChars:
			line = w
		case len(line)+1+len(w) <= maxChars:
			line = append(append(line, ' '), w...)
		default:
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			for len(w) > maxChars {
				lines = append(lines, string(w[:maxChars]))
				w = w[maxChars:]
			}
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
