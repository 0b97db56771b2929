package report

import (
	"strings"
	"time"

	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// Message is the flat text output model: an ordered sequence of lines handed
// to a messaging deep-link. The formatter emits plain UTF-8; percent-encoding
// is the caller's responsibility.
type Message struct {
	Lines []string `json:"lines"`
}

// String joins the message lines with newlines.
func (m *Message) String() string {
	return strings.Join(m.Lines, "\n")
}

// BuildDailyClosureMessage renders the daily closure as a text message:
// title, date, the three summary lines, then one line per category bucket
// with income/expense sub-lines only when the corresponding value is nonzero.
// Returns ErrEmptyResult when the day has no buckets.
func BuildDailyClosureMessage(
	date time.Time,
	summary aggregation.Balance,
	buckets []aggregation.Bucket,
) (*Message, error) {
	if len(buckets) == 0 {
		return nil, domainerror.ErrEmptyResult
	}

	m := &Message{}
	m.Lines = append(m.Lines,
		"Cierre Diario",
		date.Format("02/01/2006"),
		"",
		"Ingresos: "+FormatAmount(summary.Income),
		"Egresos: "+FormatAmount(summary.Expense),
		"Balance: "+FormatAmount(summary.Balance),
	)

	for _, bucket := range aggregation.RankBucketsByTotal(buckets) {
		sign := "-"
		if bucket.Income.IsPositive() {
			sign = "+"
		}
		m.Lines = append(m.Lines, "", bucket.Name+": "+sign+FormatAmount(bucket.Total()))
		if bucket.Income.IsPositive() {
			m.Lines = append(m.Lines, "  Ingresos: "+FormatAmount(bucket.Income))
		}
		if bucket.Expense.IsPositive() {
			m.Lines = append(m.Lines, "  Egresos: "+FormatAmount(bucket.Expense))
		}
	}

	return m, nil
}
