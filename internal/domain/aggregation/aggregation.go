// Package aggregation implements the pure computation core of the cash-flow
// tracker: date-range filtering, balance totals and group-by rollups over an
// already-fetched transaction slice. Every function is synchronous, performs
// no I/O and never mutates its input; callers re-run the whole computation
// from the latest snapshot whenever the store changes.
package aggregation

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// Balance holds the income/expense totals of a transaction set.
// Balance is always Income - Expense. Count includes transactions whose
// amount was coerced to zero.
type Balance struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// Bucket is a named accumulator of income/expense totals produced by a
// group-by operation.
type Bucket struct {
	Name    string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Total returns the combined magnitude of the bucket, income plus expense.
func (b Bucket) Total() decimal.Decimal {
	return b.Income.Add(b.Expense)
}

// FilterByDateRange keeps the transactions whose effective timestamp falls in
// [start, end]. Transactions with neither a date nor a creation time are
// excluded. The input slice is not modified; filtering an already-filtered
// slice with the same bounds returns an equal slice.
func FilterByDateRange(transactions []*entity.Transaction, start, end time.Time) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		ts, ok := tx.EffectiveTime()
		if !ok {
			continue
		}
		if ts.Before(start) || ts.After(end) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// ComputeBalance sums income and expense magnitudes over the given set.
// An empty input yields all zeros.
func ComputeBalance(transactions []*entity.Transaction) Balance {
	b := Balance{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeIncome {
			b.Income = b.Income.Add(tx.Amount)
		} else {
			b.Expense = b.Expense.Add(tx.Amount)
		}
		b.Count++
	}
	b.Balance = b.Income.Sub(b.Expense)
	return b
}

// ComputeAccountBalances returns the running balance (income - expense) per
// account over exactly the given transaction set. Callers control "as of
// when" by pre-filtering. Transactions without an account are skipped, not
// bucketed.
func ComputeAccountBalances(transactions []*entity.Transaction) map[uuid.UUID]decimal.Decimal {
	balances := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range transactions {
		if tx.AccountID == nil {
			continue
		}
		current := balances[*tx.AccountID]
		if tx.Type == entity.TransactionTypeIncome {
			balances[*tx.AccountID] = current.Add(tx.Amount)
		} else {
			balances[*tx.AccountID] = current.Sub(tx.Amount)
		}
	}
	return balances
}

// GroupByCategory buckets transactions by their denormalized category name,
// defaulting to "Sin categoría" when the snapshot is blank. Buckets keep
// first-encounter order. A single display name accumulates income and expense
// independently: two differently-typed categories sharing a name land in one
// bucket. That ambiguity is inherited behavior that reports rely on; grouping
// is by display name, never by id.
func GroupByCategory(transactions []*entity.Transaction) []Bucket {
	grouper := newBucketGrouper()
	for _, tx := range transactions {
		grouper.add(tx.DisplayCategory(), tx)
	}
	return grouper.buckets()
}

// GroupByAccount buckets transactions by account display name resolved
// through the supplied id-to-name lookup, defaulting to "Sin cuenta" for
// missing accounts and dangling ids.
func GroupByAccount(transactions []*entity.Transaction, accountNames map[uuid.UUID]string) []Bucket {
	grouper := newBucketGrouper()
	for _, tx := range transactions {
		name := entity.DefaultAccountName
		if tx.AccountID != nil {
			if resolved, ok := accountNames[*tx.AccountID]; ok && strings.TrimSpace(resolved) != "" {
				name = resolved
			}
		}
		grouper.add(name, tx)
	}
	return grouper.buckets()
}

// RankBucketsByTotal orders buckets by income+expense descending. The sort is
// stable, so ties keep the encounter order of the input.
func RankBucketsByTotal(buckets []Bucket) []Bucket {
	ranked := make([]Bucket, len(buckets))
	copy(ranked, buckets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total().GreaterThan(ranked[j].Total())
	})
	return ranked
}

// OpeningAndClosingBalance computes an account's balance immediately before a
// period and immediately after it. Opening covers transactions strictly
// before periodStart; closing adds the contribution of transactions inside
// [periodStart, periodEnd]. A pure fold over two filtered slices, never a
// store query.
func OpeningAndClosingBalance(
	allTransactions []*entity.Transaction,
	accountID uuid.UUID,
	periodStart, periodEnd time.Time,
) (opening, closing decimal.Decimal) {
	opening = decimal.Zero
	inPeriod := decimal.Zero

	for _, tx := range allTransactions {
		if tx.AccountID == nil || *tx.AccountID != accountID {
			continue
		}
		ts, ok := tx.EffectiveTime()
		if !ok {
			continue
		}

		var delta decimal.Decimal
		if tx.Type == entity.TransactionTypeIncome {
			delta = tx.Amount
		} else {
			delta = tx.Amount.Neg()
		}

		switch {
		case ts.Before(periodStart):
			opening = opening.Add(delta)
		case !ts.After(periodEnd):
			inPeriod = inPeriod.Add(delta)
		}
	}

	return opening, opening.Add(inPeriod)
}

// bucketGrouper accumulates income/expense per display name while preserving
// first-encounter order.
type bucketGrouper struct {
	order   []string
	indexOf map[string]int
	totals  []Bucket
}

func newBucketGrouper() *bucketGrouper {
	return &bucketGrouper{
		indexOf: make(map[string]int),
	}
}

func (g *bucketGrouper) add(name string, tx *entity.Transaction) {
	idx, ok := g.indexOf[name]
	if !ok {
		idx = len(g.totals)
		g.indexOf[name] = idx
		g.order = append(g.order, name)
		g.totals = append(g.totals, Bucket{
			Name:    name,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	if tx.Type == entity.TransactionTypeIncome {
		g.totals[idx].Income = g.totals[idx].Income.Add(tx.Amount)
	} else {
		g.totals[idx].Expense = g.totals[idx].Expense.Add(tx.Amount)
	}
}

func (g *bucketGrouper) buckets() []Bucket {
	out := make([]Bucket, len(g.totals))
	copy(out, g.totals)
	return out
}
