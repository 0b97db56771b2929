// Package report turns aggregation output into a printable document model and
// a plain-text message model. Both builders are pure: they take computed
// summaries in and return data structures out, leaving rendering (print
// pipeline, messaging deep-link) to the callers.
package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// Numbers follow the deployment locale: period for thousands, comma for
// decimals, always two decimal places.
var printer = message.NewPrinter(language.MustParse("es-UY"))

// FormatNumber renders a monetary magnitude with es-UY separators and exactly
// two decimals.
func FormatNumber(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// FormatAmount renders a currency amount, e.g. "$1.234,56".
func FormatAmount(d decimal.Decimal) string {
	return "$" + FormatNumber(d)
}

// FormatSignedAmount prefixes the amount with the movement direction.
func FormatSignedAmount(transactionType entity.TransactionType, d decimal.Decimal) string {
	if transactionType == entity.TransactionTypeIncome {
		return "+" + FormatAmount(d)
	}
	return "-" + FormatAmount(d)
}

// FormatPercent renders a percentage with one decimal, e.g. "12,5".
func FormatPercent(p float64) string {
	return printer.Sprint(number.Decimal(p, number.Scale(1)))
}
