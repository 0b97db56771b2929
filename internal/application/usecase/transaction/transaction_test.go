package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id {
			copied := *tx
			return &copied, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	for i := range f.transactions {
		if f.transactions[i].ID == transaction.ID {
			f.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

type stubCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return errors.New("not implemented")
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if category, ok := s.categories[id]; ok {
		return category, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (s *stubCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return errors.New("not implemented")
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

type stubAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (s *stubAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return errors.New("not implemented")
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := s.accounts[id]; ok {
		return account, nil
	}
	return nil, domainerror.ErrAccountNotFound
}

func (s *stubAccountRepo) FindAll(ctx context.Context) ([]*entity.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return errors.New("not implemented")
}

func (s *stubAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func newCreateUseCase(txRepo *fakeTransactionRepo, categories *stubCategoryRepo, accounts *stubAccountRepo) *CreateTransactionUseCase {
	if categories == nil {
		categories = &stubCategoryRepo{}
	}
	if accounts == nil {
		accounts = &stubAccountRepo{}
	}
	return NewCreateTransactionUseCase(txRepo, categories, accounts)
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	t.Run("snapshots category and account names", func(t *testing.T) {
		category := entity.NewCategory("Ventas", entity.CategoryTypeIncome)
		account := entity.NewAccount("Caja")
		repo := &fakeTransactionRepo{}
		uc := newCreateUseCase(
			repo,
			&stubCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}},
			&stubAccountRepo{accounts: map[uuid.UUID]*entity.Account{account.ID: account}},
		)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Type:        "income",
			Description: "Venta mostrador",
			Amount:      decimal.NewFromInt(100),
			CategoryID:  &category.ID,
			AccountID:   &account.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.CategoryName != "Ventas" || output.Transaction.AccountName != "Caja" {
			t.Errorf("unexpected snapshots: %q %q", output.Transaction.CategoryName, output.Transaction.AccountName)
		}
		if len(repo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(repo.transactions))
		}
	})

	t.Run("dangling references leave the snapshots blank", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := newCreateUseCase(repo, nil, nil)

		missingCategory := uuid.New()
		missingAccount := uuid.New()
		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			Type:        "expense",
			Description: "Compra insumos",
			Amount:      decimal.NewFromInt(50),
			CategoryID:  &missingCategory,
			AccountID:   &missingAccount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.CategoryName != "" || output.Transaction.AccountName != "" {
			t.Errorf("expected blank snapshots, got %q %q", output.Transaction.CategoryName, output.Transaction.AccountName)
		}
	})

	t.Run("validation failures carry error codes", func(t *testing.T) {
		uc := newCreateUseCase(&fakeTransactionRepo{}, nil, nil)

		tests := []struct {
			name     string
			input    CreateTransactionInput
			wantCode domainerror.TransactionErrorCode
		}{
			{
				"unknown type",
				CreateTransactionInput{Type: "transfer", Description: "x", Amount: decimal.NewFromInt(1)},
				domainerror.ErrCodeInvalidTransactionType,
			},
			{
				"blank description",
				CreateTransactionInput{Type: "income", Description: "  ", Amount: decimal.NewFromInt(1)},
				domainerror.ErrCodeDescriptionRequired,
			},
			{
				"non-positive amount",
				CreateTransactionInput{Type: "income", Description: "x", Amount: decimal.Zero},
				domainerror.ErrCodeInvalidTransactionAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.input)
				var txErr *domainerror.TransactionError
				if !errors.As(err, &txErr) || txErr.Code != tt.wantCode {
					t.Fatalf("expected code %s, got %v", tt.wantCode, err)
				}
			})
		}
	})
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	jan := func(day int) time.Time {
		return time.Date(2025, time.January, day, 12, 0, 0, 0, time.UTC)
	}
	mk := func(description string, date time.Time) *entity.Transaction {
		return &entity.Transaction{
			ID:          uuid.New(),
			Type:        entity.TransactionTypeIncome,
			Description: description,
			Amount:      decimal.NewFromInt(10),
			Date:        &date,
			CreatedAt:   date,
		}
	}

	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		mk("viejo", jan(1)),
		mk("nuevo", jan(20)),
		mk("medio", jan(10)),
	}}
	uc := NewListTransactionsUseCase(repo)

	t.Run("lists newest first", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
		}
		got := []string{
			output.Transactions[0].Description,
			output.Transactions[1].Description,
			output.Transactions[2].Description,
		}
		if got[0] != "nuevo" || got[1] != "medio" || got[2] != "viejo" {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("scopes to a calendar day", func(t *testing.T) {
		day := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		output, err := uc.Execute(context.Background(), ListTransactionsInput{Date: &day})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 1 || output.Transactions[0].Description != "medio" {
			t.Fatalf("unexpected day scope result: %+v", output.Transactions)
		}
	})
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	t.Run("merges fields and re-snapshots the category", func(t *testing.T) {
		oldCategory := entity.NewCategory("Ventas", entity.CategoryTypeIncome)
		newCategory := entity.NewCategory("Servicios", entity.CategoryTypeIncome)
		existing := entity.NewTransaction(
			entity.TransactionTypeIncome,
			"Venta mostrador",
			decimal.NewFromInt(100),
			&oldCategory.ID, oldCategory.Name,
			nil, "",
			nil, "",
		)

		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
		uc := NewUpdateTransactionUseCase(
			repo,
			&stubCategoryRepo{categories: map[uuid.UUID]*entity.Category{
				oldCategory.ID: oldCategory,
				newCategory.ID: newCategory,
			}},
			&stubAccountRepo{},
		)

		amount := decimal.NewFromInt(150)
		output, err := uc.Execute(context.Background(), UpdateTransactionInput{
			ID:         existing.ID,
			Amount:     &amount,
			CategoryID: &newCategory.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.Transaction.Amount.String(); got != "150" {
			t.Errorf("expected amount 150, got %s", got)
		}
		if output.Transaction.CategoryName != "Servicios" {
			t.Errorf("expected re-snapshotted name Servicios, got %q", output.Transaction.CategoryName)
		}
		if output.Transaction.Description != "Venta mostrador" {
			t.Errorf("description changed unexpectedly: %q", output.Transaction.Description)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		uc := NewUpdateTransactionUseCase(&fakeTransactionRepo{}, &stubCategoryRepo{}, &stubAccountRepo{})
		_, err := uc.Execute(context.Background(), UpdateTransactionInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	existing := entity.NewTransaction(
		entity.TransactionTypeExpense,
		"Compra insumos",
		decimal.NewFromInt(40),
		nil, "",
		nil, "",
		nil, "",
	)
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{existing}}
	uc := NewDeleteTransactionUseCase(repo)

	if err := uc.Execute(context.Background(), existing.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.transactions) != 0 {
		t.Errorf("expected transaction to be removed, %d remain", len(repo.transactions))
	}

	if err := uc.Execute(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
