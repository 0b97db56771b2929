// Package report contains the daily closure report use cases.
package report

import (
	"context"
	"time"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	"github.com/cashflow-tracker/backend/internal/domain/report"
)

// GetDailyClosureDocumentInput represents the input for the printable report.
type GetDailyClosureDocumentInput struct {
	Date time.Time
}

// GetDailyClosureDocumentOutput represents the printable report output.
type GetDailyClosureDocumentOutput struct {
	Document *report.Document
}

// GetDailyClosureDocumentUseCase builds the printable daily closure: summary,
// per-account opening/closing balances and the day's movements.
type GetDailyClosureDocumentUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewGetDailyClosureDocumentUseCase creates a new GetDailyClosureDocumentUseCase instance.
func NewGetDailyClosureDocumentUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *GetDailyClosureDocumentUseCase {
	return &GetDailyClosureDocumentUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute assembles the document. Propagates ErrEmptyResult when the day has
// no movements.
func (uc *GetDailyClosureDocumentUseCase) Execute(ctx context.Context, input GetDailyClosureDocumentInput) (*GetDailyClosureDocumentOutput, error) {
	data, err := loadDay(ctx, uc.transactionRepo, uc.accountRepo, input.Date)
	if err != nil {
		return nil, err
	}

	accountRows := make([]report.AccountRow, 0, len(data.accounts))
	for _, account := range data.accounts {
		opening, closing := aggregation.OpeningAndClosingBalance(data.all, account.ID, data.start, data.end)
		accountRows = append(accountRows, report.AccountRow{
			Name:       account.Name,
			Opening:    opening,
			Closing:    closing,
			Difference: closing.Sub(opening),
		})
	}

	movements := make([]report.MovementRow, 0, len(data.day))
	for _, tx := range data.day {
		ts, _ := tx.EffectiveTime()
		accountName := tx.AccountName
		if accountName == "" {
			accountName = entity.DefaultAccountName
		}
		movements = append(movements, report.MovementRow{
			Time:        ts,
			Category:    tx.DisplayCategory(),
			Description: tx.Description,
			Account:     accountName,
			Type:        tx.Type,
			Amount:      tx.Amount,
		})
	}

	document, err := report.BuildDailyClosureDocument(input.Date, data.summary, accountRows, movements)
	if err != nil {
		return nil, err
	}

	return &GetDailyClosureDocumentOutput{Document: document}, nil
}
