// Package cashflow contains the cash-flow summary use case.
package cashflow

import (
	"context"
	"fmt"
	"time"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
)

// Empty-state messages shown instead of a zero-valued summary.
const (
	msgNoTransactions       = "No hay movimientos registrados"
	msgNoTransactionsForDay = "No hay movimientos en la fecha seleccionada"
)

// GetSummaryInput represents the input for the summary computation. A nil
// Date computes the lifetime summary; otherwise only movements whose
// effective timestamp falls on that calendar day are included.
type GetSummaryInput struct {
	Date *time.Time
}

// GetSummaryOutput represents the output of the summary computation. When
// Empty is true no transactions matched and Message carries the reason; the
// totals are meaningless and callers must not render them as zeros. Buckets
// holds the category breakdown ranked by combined volume.
type GetSummaryOutput struct {
	Summary aggregation.Balance
	Buckets []aggregation.Bucket
	Empty   bool
	Message string
}

// GetSummaryUseCase computes income, expense and balance totals over the
// current store snapshot.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if input.Date != nil {
		start := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, input.Date.Location())
		end := start.Add(24*time.Hour - time.Nanosecond)
		transactions = aggregation.FilterByDateRange(transactions, start, end)
	}

	if len(transactions) == 0 {
		message := msgNoTransactions
		if input.Date != nil {
			message = msgNoTransactionsForDay
		}
		return &GetSummaryOutput{Empty: true, Message: message}, nil
	}

	return &GetSummaryOutput{
		Summary: aggregation.ComputeBalance(transactions),
		Buckets: aggregation.RankBucketsByTotal(aggregation.GroupByCategory(transactions)),
	}, nil
}
