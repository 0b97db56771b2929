// Package analysis contains the expense-analysis use case.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// AnalysisKind selects the dimension of the analysis rollup.
type AnalysisKind string

const (
	AnalysisByCategory AnalysisKind = "category"
	AnalysisByAccount  AnalysisKind = "account"
	AnalysisByPeriod   AnalysisKind = "period"
)

// IsValidAnalysisKind reports whether the given kind is supported.
func IsValidAnalysisKind(kind AnalysisKind) bool {
	switch kind {
	case AnalysisByCategory, AnalysisByAccount, AnalysisByPeriod:
		return true
	}
	return false
}

// GenerateAnalysisInput represents the input for an analysis run. Period is
// only consulted when Kind is AnalysisByPeriod.
type GenerateAnalysisInput struct {
	Kind   AnalysisKind
	Start  *time.Time
	End    *time.Time
	Period aggregation.PeriodKind
}

// AnalysisItem is one ranked bucket of a category or account analysis.
// IncomePercent is the bucket's share of total income, ExpensePercent its
// share of total expenses, each rounded to one decimal.
type AnalysisItem struct {
	Name           string
	Income         decimal.Decimal
	Expense        decimal.Decimal
	Total          decimal.Decimal
	IncomePercent  decimal.Decimal
	ExpensePercent decimal.Decimal
}

// PeriodItem is one chronological bucket of a period analysis.
type PeriodItem struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// GenerateAnalysisOutput represents the output of an analysis run. Items is
// populated for category and account analyses, Periods for period analyses.
type GenerateAnalysisOutput struct {
	Kind    AnalysisKind
	Summary aggregation.Balance
	Items   []AnalysisItem
	Periods []PeriodItem
}

// GenerateAnalysisUseCase computes grouped income/expense rollups over a date
// range.
type GenerateAnalysisUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewGenerateAnalysisUseCase creates a new GenerateAnalysisUseCase instance.
func NewGenerateAnalysisUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *GenerateAnalysisUseCase {
	return &GenerateAnalysisUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute validates the request, filters the store snapshot to the range and
// produces the requested rollup. Returns ErrEmptyResult when no transactions
// fall inside the range.
func (uc *GenerateAnalysisUseCase) Execute(ctx context.Context, input GenerateAnalysisInput) (*GenerateAnalysisOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	start := time.Date(input.Start.Year(), input.Start.Month(), input.Start.Day(), 0, 0, 0, 0, input.Start.Location())
	end := time.Date(input.End.Year(), input.End.Month(), input.End.Day(), 0, 0, 0, 0, input.End.Location()).
		Add(24*time.Hour - time.Nanosecond)
	filtered := aggregation.FilterByDateRange(transactions, start, end)
	if len(filtered) == 0 {
		return nil, domainerror.ErrEmptyResult
	}

	output := &GenerateAnalysisOutput{
		Kind:    input.Kind,
		Summary: aggregation.ComputeBalance(filtered),
	}

	switch input.Kind {
	case AnalysisByCategory:
		output.Items = toItems(aggregation.GroupByCategory(filtered))
	case AnalysisByAccount:
		accounts, err := uc.accountRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		names := make(map[uuid.UUID]string, len(accounts))
		for _, account := range accounts {
			names[account.ID] = account.Name
		}
		output.Items = toItems(aggregation.GroupByAccount(filtered, names))
	case AnalysisByPeriod:
		for _, bucket := range aggregation.GroupByPeriod(filtered, input.Period) {
			output.Periods = append(output.Periods, PeriodItem{
				Label:   bucket.Name,
				Income:  bucket.Income,
				Expense: bucket.Expense,
				Balance: bucket.Income.Sub(bucket.Expense),
			})
		}
	}

	return output, nil
}

func validateInput(input GenerateAnalysisInput) error {
	if !IsValidAnalysisKind(input.Kind) {
		return domainerror.NewAnalysisError(
			domainerror.ErrCodeInvalidAnalysisKind,
			fmt.Sprintf("invalid analysis type: %s", input.Kind),
			domainerror.ErrInvalidAnalysisKind,
		)
	}
	if input.Start == nil {
		return domainerror.NewAnalysisError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if input.End == nil {
		return domainerror.NewAnalysisError(
			domainerror.ErrCodeMissingEndDate,
			"end date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if input.Start.After(*input.End) {
		return domainerror.NewAnalysisError(
			domainerror.ErrCodeInvalidDateRange,
			"start date must not be after end date",
			domainerror.ErrInvalidDateRange,
		)
	}
	if input.Kind == AnalysisByPeriod && !aggregation.IsValidPeriodKind(input.Period) {
		return domainerror.NewAnalysisError(
			domainerror.ErrCodeInvalidPeriodKind,
			fmt.Sprintf("invalid period: %s", input.Period),
			domainerror.ErrInvalidPeriodKind,
		)
	}
	return nil
}

// toItems ranks buckets by combined magnitude and derives each bucket's share
// of its direction's total: income against total income, expense against
// total expenses. A zero directional total leaves that percentage at zero.
func toItems(buckets []aggregation.Bucket) []AnalysisItem {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, bucket := range buckets {
		totalIncome = totalIncome.Add(bucket.Income)
		totalExpense = totalExpense.Add(bucket.Expense)
	}

	ranked := aggregation.RankBucketsByTotal(buckets)
	items := make([]AnalysisItem, 0, len(ranked))
	hundred := decimal.NewFromInt(100)
	for _, bucket := range ranked {
		incomePercent := decimal.Zero
		if totalIncome.IsPositive() {
			incomePercent = bucket.Income.Mul(hundred).Div(totalIncome).Round(1)
		}
		expensePercent := decimal.Zero
		if totalExpense.IsPositive() {
			expensePercent = bucket.Expense.Mul(hundred).Div(totalExpense).Round(1)
		}
		items = append(items, AnalysisItem{
			Name:           bucket.Name,
			Income:         bucket.Income,
			Expense:        bucket.Expense,
			Total:          bucket.Total(),
			IncomePercent:  incomePercent,
			ExpensePercent: expensePercent,
		})
	}
	return items
}
