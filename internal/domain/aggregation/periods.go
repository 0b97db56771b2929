package aggregation

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// PeriodKind selects the granularity of a period rollup.
type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
)

// IsValidPeriodKind reports whether the given kind is supported.
func IsValidPeriodKind(kind PeriodKind) bool {
	switch kind {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// PeriodBucket is a Bucket with the representative start time of its period,
// kept so monthly buckets can be ordered chronologically after label-keyed
// accumulation.
type PeriodBucket struct {
	Bucket
	Start time.Time
}

// spanishMonths holds capitalized es-ES month names for period labels.
var spanishMonths = [...]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

// FormatDayLabel renders a calendar date as DD/MM/YYYY.
func FormatDayLabel(t time.Time) string {
	return t.Format("02/01/2006")
}

// WeekStart returns the local midnight of the Sunday that starts the week
// containing t (0=Sunday day-of-week convention).
func WeekStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// PeriodLabel derives the display label of the period containing t.
func PeriodLabel(t time.Time, kind PeriodKind) string {
	switch kind {
	case PeriodDaily:
		return FormatDayLabel(t)
	case PeriodWeekly:
		return "Semana " + FormatDayLabel(WeekStart(t))
	case PeriodMonthly:
		return fmt.Sprintf("%s de %d", spanishMonths[t.Month()], t.Year())
	case PeriodYearly:
		return strconv.Itoa(t.Year())
	default:
		return FormatDayLabel(t)
	}
}

// periodStart normalizes t to the representative start of its period, used
// for chronological ordering of monthly buckets.
func periodStart(t time.Time, kind PeriodKind) time.Time {
	switch kind {
	case PeriodDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case PeriodWeekly:
		return WeekStart(t)
	case PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PeriodYearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// GroupByPeriod buckets transactions by the period containing their effective
// timestamp. Transactions without an effective timestamp are excluded.
// Display order: daily and weekly buckets sort lexicographically on the
// label, monthly chronologically, yearly numerically ascending.
func GroupByPeriod(transactions []*entity.Transaction, kind PeriodKind) []PeriodBucket {
	indexOf := make(map[string]int)
	var buckets []PeriodBucket

	for _, tx := range transactions {
		ts, ok := tx.EffectiveTime()
		if !ok {
			continue
		}

		label := PeriodLabel(ts, kind)
		idx, seen := indexOf[label]
		if !seen {
			idx = len(buckets)
			indexOf[label] = idx
			buckets = append(buckets, PeriodBucket{
				Bucket: Bucket{
					Name:    label,
					Income:  decimal.Zero,
					Expense: decimal.Zero,
				},
				Start: periodStart(ts, kind),
			})
		}

		if tx.Type == entity.TransactionTypeIncome {
			buckets[idx].Income = buckets[idx].Income.Add(tx.Amount)
		} else {
			buckets[idx].Expense = buckets[idx].Expense.Add(tx.Amount)
		}
	}

	sortPeriodBuckets(buckets, kind)
	return buckets
}

func sortPeriodBuckets(buckets []PeriodBucket, kind PeriodKind) {
	switch kind {
	case PeriodYearly:
		sort.SliceStable(buckets, func(i, j int) bool {
			yi, _ := strconv.Atoi(buckets[i].Name)
			yj, _ := strconv.Atoi(buckets[j].Name)
			return yi < yj
		})
	case PeriodMonthly:
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Start.Before(buckets[j].Start)
		})
	default:
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Name < buckets[j].Name
		})
	}
}
