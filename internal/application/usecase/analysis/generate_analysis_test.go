package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	transactions []*entity.Transaction
}

func (s *stubTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTransactionRepo) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return s.transactions, nil
}

func (s *stubTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func (s *stubTransactionRepo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return 0, errors.New("not implemented")
}

func (s *stubTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, errors.New("not implemented")
}

type stubAccountRepo struct {
	accounts []*entity.Account
}

func (s *stubAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return errors.New("not implemented")
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccountRepo) FindAll(ctx context.Context) ([]*entity.Account, error) {
	return s.accounts, nil
}

func (s *stubAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return errors.New("not implemented")
}

func (s *stubAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func analysisTx(txType entity.TransactionType, amount int64, categoryName string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:           uuid.New(),
		Type:         txType,
		Amount:       decimal.NewFromInt(amount),
		CategoryName: categoryName,
		Date:         &date,
		CreatedAt:    date,
	}
}

func TestGenerateAnalysisUseCase_Validation(t *testing.T) {
	uc := NewGenerateAnalysisUseCase(&stubTransactionRepo{}, &stubAccountRepo{})

	tests := []struct {
		name     string
		input    GenerateAnalysisInput
		wantCode domainerror.AnalysisErrorCode
	}{
		{
			"unknown kind",
			GenerateAnalysisInput{Kind: "weekly-report"},
			domainerror.ErrCodeInvalidAnalysisKind,
		},
		{
			"missing start date",
			GenerateAnalysisInput{Kind: AnalysisByCategory, End: datePtr(2025, time.January, 31)},
			domainerror.ErrCodeMissingStartDate,
		},
		{
			"missing end date",
			GenerateAnalysisInput{Kind: AnalysisByCategory, Start: datePtr(2025, time.January, 1)},
			domainerror.ErrCodeMissingEndDate,
		},
		{
			"inverted range",
			GenerateAnalysisInput{
				Kind:  AnalysisByCategory,
				Start: datePtr(2025, time.February, 1),
				End:   datePtr(2025, time.January, 1),
			},
			domainerror.ErrCodeInvalidDateRange,
		},
		{
			"unknown period granularity",
			GenerateAnalysisInput{
				Kind:   AnalysisByPeriod,
				Start:  datePtr(2025, time.January, 1),
				End:    datePtr(2025, time.January, 31),
				Period: "quarterly",
			},
			domainerror.ErrCodeInvalidPeriodKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var analysisErr *domainerror.AnalysisError
			if !errors.As(err, &analysisErr) {
				t.Fatalf("expected AnalysisError, got %v", err)
			}
			if analysisErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, analysisErr.Code)
			}
		})
	}
}

func TestGenerateAnalysisUseCase_Execute(t *testing.T) {
	jan := func(day int) time.Time {
		return time.Date(2025, time.January, day, 10, 0, 0, 0, time.UTC)
	}
	rangeInput := func(kind AnalysisKind) GenerateAnalysisInput {
		return GenerateAnalysisInput{
			Kind:  kind,
			Start: datePtr(2025, time.January, 1),
			End:   datePtr(2025, time.January, 31),
		}
	}

	t.Run("empty range yields the empty-result sentinel", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: []*entity.Transaction{
			analysisTx(entity.TransactionTypeIncome, 100, "Ventas", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGenerateAnalysisUseCase(repo, &stubAccountRepo{})

		_, err := uc.Execute(context.Background(), rangeInput(AnalysisByCategory))
		if !errors.Is(err, domainerror.ErrEmptyResult) {
			t.Fatalf("expected ErrEmptyResult, got %v", err)
		}
	})

	t.Run("category analysis ranks buckets and derives percentages", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: []*entity.Transaction{
			analysisTx(entity.TransactionTypeExpense, 10, "Bebidas", jan(5)),
			analysisTx(entity.TransactionTypeExpense, 20, "Almuerzo", jan(6)),
		}}
		uc := NewGenerateAnalysisUseCase(repo, &stubAccountRepo{})

		output, err := uc.Execute(context.Background(), rangeInput(AnalysisByCategory))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(output.Items))
		}
		if output.Items[0].Name != "Almuerzo" || output.Items[1].Name != "Bebidas" {
			t.Errorf("unexpected ranking: %q, %q", output.Items[0].Name, output.Items[1].Name)
		}
		if got := output.Items[0].ExpensePercent.String(); got != "66.7" {
			t.Errorf("expected expense percentage 66.7, got %s", got)
		}
		if got := output.Items[1].ExpensePercent.String(); got != "33.3" {
			t.Errorf("expected expense percentage 33.3, got %s", got)
		}
		if !output.Items[0].IncomePercent.IsZero() {
			t.Errorf("expected zero income percentage with no income, got %s", output.Items[0].IncomePercent)
		}
		if got := output.Summary.Expense.String(); got != "30" {
			t.Errorf("expected total expense 30, got %s", got)
		}
	})

	t.Run("percentages are computed per direction", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: []*entity.Transaction{
			analysisTx(entity.TransactionTypeIncome, 100, "Ventas", jan(5)),
			analysisTx(entity.TransactionTypeExpense, 50, "Proveedores", jan(6)),
		}}
		uc := NewGenerateAnalysisUseCase(repo, &stubAccountRepo{})

		output, err := uc.Execute(context.Background(), rangeInput(AnalysisByCategory))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(output.Items))
		}
		// Each bucket owns all of its direction's total, so both read 100%.
		if got := output.Items[0].IncomePercent.String(); got != "100" {
			t.Errorf("expected Ventas income percentage 100, got %s", got)
		}
		if got := output.Items[1].ExpensePercent.String(); got != "100" {
			t.Errorf("expected Proveedores expense percentage 100, got %s", got)
		}
		if !output.Items[0].ExpensePercent.IsZero() || !output.Items[1].IncomePercent.IsZero() {
			t.Errorf("expected zero cross-direction percentages, got %s and %s",
				output.Items[0].ExpensePercent, output.Items[1].IncomePercent)
		}
	})

	t.Run("account analysis maps ids to names", func(t *testing.T) {
		caja := uuid.New()
		tx := analysisTx(entity.TransactionTypeIncome, 100, "", jan(5))
		tx.AccountID = &caja

		repo := &stubTransactionRepo{transactions: []*entity.Transaction{tx}}
		accounts := &stubAccountRepo{accounts: []*entity.Account{
			{ID: caja, Name: "Caja", Active: true},
		}}
		uc := NewGenerateAnalysisUseCase(repo, accounts)

		output, err := uc.Execute(context.Background(), rangeInput(AnalysisByAccount))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Items) != 1 || output.Items[0].Name != "Caja" {
			t.Fatalf("expected one Caja item, got %+v", output.Items)
		}
	})

	t.Run("period analysis returns chronological buckets with balances", func(t *testing.T) {
		repo := &stubTransactionRepo{transactions: []*entity.Transaction{
			analysisTx(entity.TransactionTypeIncome, 100, "", jan(5)),
			analysisTx(entity.TransactionTypeExpense, 30, "", jan(5)),
			analysisTx(entity.TransactionTypeIncome, 50, "", jan(20)),
		}}
		uc := NewGenerateAnalysisUseCase(repo, &stubAccountRepo{})

		input := rangeInput(AnalysisByPeriod)
		input.Period = aggregation.PeriodDaily
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Periods) != 2 {
			t.Fatalf("expected 2 periods, got %d", len(output.Periods))
		}
		if output.Periods[0].Label != "05/01/2025" || output.Periods[1].Label != "20/01/2025" {
			t.Errorf("unexpected labels: %q, %q", output.Periods[0].Label, output.Periods[1].Label)
		}
		if got := output.Periods[0].Balance.String(); got != "70" {
			t.Errorf("expected balance 70, got %s", got)
		}
	})
}
