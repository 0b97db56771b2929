// Package report contains the daily closure report use cases.
package report

import (
	"context"
	"time"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	"github.com/cashflow-tracker/backend/internal/domain/report"
)

// GetDailyClosureMessageInput represents the input for the text report.
type GetDailyClosureMessageInput struct {
	Date time.Time
}

// GetDailyClosureMessageOutput represents the text report output.
type GetDailyClosureMessageOutput struct {
	Message *report.Message
}

// GetDailyClosureMessageUseCase builds the daily closure as a flat text
// message grouped by category.
type GetDailyClosureMessageUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewGetDailyClosureMessageUseCase creates a new GetDailyClosureMessageUseCase instance.
func NewGetDailyClosureMessageUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *GetDailyClosureMessageUseCase {
	return &GetDailyClosureMessageUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute assembles the message. Propagates ErrEmptyResult when the day has
// no movements.
func (uc *GetDailyClosureMessageUseCase) Execute(ctx context.Context, input GetDailyClosureMessageInput) (*GetDailyClosureMessageOutput, error) {
	data, err := loadDay(ctx, uc.transactionRepo, uc.accountRepo, input.Date)
	if err != nil {
		return nil, err
	}

	message, err := report.BuildDailyClosureMessage(input.Date, data.summary, aggregation.GroupByCategory(data.day))
	if err != nil {
		return nil, err
	}

	return &GetDailyClosureMessageOutput{Message: message}, nil
}
