// Package report contains the daily closure report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// dayData is the shared input of both report targets: the day's transactions
// plus the full snapshot needed for opening balances.
type dayData struct {
	start    time.Time
	end      time.Time
	all      []*entity.Transaction
	day      []*entity.Transaction
	summary  aggregation.Balance
	accounts []*entity.Account
}

// loadDay fetches the store snapshot and scopes it to the calendar day.
func loadDay(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	date time.Time,
) (*dayData, error) {
	all, err := transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	accounts, err := accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	day := aggregation.FilterByDateRange(all, start, end)

	return &dayData{
		start:    start,
		end:      end,
		all:      all,
		day:      day,
		summary:  aggregation.ComputeBalance(day),
		accounts: accounts,
	}, nil
}
