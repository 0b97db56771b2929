// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
)

// ListTransactionsInput represents the input for listing transactions. A nil
// Date lists every transaction; otherwise only movements whose effective
// timestamp falls on that calendar day are returned.
type ListTransactionsInput struct {
	Date *time.Time
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves transactions newest-first, optionally scoped to a day.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if input.Date != nil {
		start := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, input.Date.Location())
		end := start.Add(24*time.Hour - time.Nanosecond)
		transactions = aggregation.FilterByDateRange(transactions, start, end)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		ti, okI := transactions[i].EffectiveTime()
		tj, okJ := transactions[j].EffectiveTime()
		if !okI || !okJ {
			return okI
		}
		return ti.After(tj)
	})

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
	}
	for _, t := range transactions {
		output.Transactions = append(output.Transactions, toTransactionOutput(t))
	}

	return output, nil
}
