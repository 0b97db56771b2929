package account

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

type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, domainerror.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindAll(ctx context.Context) ([]*entity.Account, error) {
	return f.accounts, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	for i := range f.accounts {
		if f.accounts[i].ID == account.ID {
			f.accounts[i] = account
			return nil
		}
	}
	return domainerror.ErrAccountNotFound
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.accounts {
		if f.accounts[i].ID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrAccountNotFound
}

type stubTransactionRepo struct {
	transactions []*entity.Transaction
	countErr     error
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
	if s.countErr != nil {
		return 0, s.countErr
	}
	var count int64
	for _, tx := range s.transactions {
		if tx.AccountID != nil && *tx.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

func (s *stubTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, errors.New("not implemented")
}

func TestCreateAccountUseCase_Execute(t *testing.T) {
	t.Run("creates an active account", func(t *testing.T) {
		repo := &fakeAccountRepo{}
		uc := NewCreateAccountUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateAccountInput{Name: "  Caja Chica  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Account.Name != "Caja Chica" {
			t.Errorf("expected trimmed name, got %q", output.Account.Name)
		}
		if !output.Account.Active {
			t.Error("expected new account to be active")
		}
		if len(repo.accounts) != 1 {
			t.Errorf("expected 1 stored account, got %d", len(repo.accounts))
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateAccountUseCase(&fakeAccountRepo{})

		_, err := uc.Execute(context.Background(), CreateAccountInput{Name: "   "})
		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) || accountErr.Code != domainerror.ErrCodeAccountNameRequired {
			t.Fatalf("expected ErrCodeAccountNameRequired, got %v", err)
		}
	})
}

func TestListAccountsUseCase_Execute(t *testing.T) {
	caja := entity.NewAccount("Caja")
	banco := entity.NewAccount("Banco")
	repo := &fakeAccountRepo{accounts: []*entity.Account{banco, caja}}

	date := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	txRepo := &stubTransactionRepo{transactions: []*entity.Transaction{
		{
			ID:        uuid.New(),
			Type:      entity.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(500),
			AccountID: &caja.ID,
			CreatedAt: date,
		},
		{
			ID:        uuid.New(),
			Type:      entity.TransactionTypeExpense,
			Amount:    decimal.NewFromInt(120),
			AccountID: &caja.ID,
			CreatedAt: date,
		},
	}}

	uc := NewListAccountsUseCase(repo, txRepo)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(output.Accounts))
	}
	byName := map[string]string{}
	for _, account := range output.Accounts {
		byName[account.Name] = account.Balance.String()
	}
	if byName["Caja"] != "380" {
		t.Errorf("expected Caja balance 380, got %s", byName["Caja"])
	}
	if byName["Banco"] != "0" {
		t.Errorf("expected Banco balance 0, got %s", byName["Banco"])
	}
}

func TestUpdateAccountUseCase_Execute(t *testing.T) {
	t.Run("merges only the provided fields", func(t *testing.T) {
		existing := entity.NewAccount("Caja")
		repo := &fakeAccountRepo{accounts: []*entity.Account{existing}}
		uc := NewUpdateAccountUseCase(repo)

		inactive := false
		output, err := uc.Execute(context.Background(), UpdateAccountInput{ID: existing.ID, Active: &inactive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Account.Name != "Caja" {
			t.Errorf("name changed unexpectedly: %q", output.Account.Name)
		}
		if output.Account.Active {
			t.Error("expected account to be deactivated")
		}
	})

	t.Run("rejects renaming to blank", func(t *testing.T) {
		existing := entity.NewAccount("Caja")
		repo := &fakeAccountRepo{accounts: []*entity.Account{existing}}
		uc := NewUpdateAccountUseCase(repo)

		blank := "  "
		_, err := uc.Execute(context.Background(), UpdateAccountInput{ID: existing.ID, Name: &blank})
		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) || accountErr.Code != domainerror.ErrCodeAccountNameRequired {
			t.Fatalf("expected ErrCodeAccountNameRequired, got %v", err)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		uc := NewUpdateAccountUseCase(&fakeAccountRepo{})
		_, err := uc.Execute(context.Background(), UpdateAccountInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestDeleteAccountUseCase_Execute(t *testing.T) {
	t.Run("deletes an unreferenced account", func(t *testing.T) {
		existing := entity.NewAccount("Caja")
		repo := &fakeAccountRepo{accounts: []*entity.Account{existing}}
		uc := NewDeleteAccountUseCase(repo, &stubTransactionRepo{})

		if err := uc.Execute(context.Background(), existing.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.accounts) != 0 {
			t.Errorf("expected account to be removed, %d remain", len(repo.accounts))
		}
	})

	t.Run("refuses to delete a referenced account", func(t *testing.T) {
		existing := entity.NewAccount("Caja")
		repo := &fakeAccountRepo{accounts: []*entity.Account{existing}}
		txRepo := &stubTransactionRepo{transactions: []*entity.Transaction{
			{ID: uuid.New(), Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(10), AccountID: &existing.ID},
		}}
		uc := NewDeleteAccountUseCase(repo, txRepo)

		err := uc.Execute(context.Background(), existing.ID)
		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) || accountErr.Code != domainerror.ErrCodeAccountHasTransactions {
			t.Fatalf("expected ErrCodeAccountHasTransactions, got %v", err)
		}
		if len(repo.accounts) != 1 {
			t.Error("account was deleted despite references")
		}
	})
}

func TestEnsureDefaultAccountsUseCase_Execute(t *testing.T) {
	t.Run("seeds defaults into an empty store", func(t *testing.T) {
		repo := &fakeAccountRepo{}
		uc := NewEnsureDefaultAccountsUseCase(repo)

		if err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.accounts) != len(entity.DefaultAccountNames) {
			t.Fatalf("expected %d accounts, got %d", len(entity.DefaultAccountNames), len(repo.accounts))
		}
		for i, name := range entity.DefaultAccountNames {
			if repo.accounts[i].Name != name {
				t.Errorf("account %d: expected %q, got %q", i, name, repo.accounts[i].Name)
			}
		}
	})

	t.Run("leaves a populated store alone", func(t *testing.T) {
		repo := &fakeAccountRepo{accounts: []*entity.Account{entity.NewAccount("Caja")}}
		uc := NewEnsureDefaultAccountsUseCase(repo)

		if err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.accounts) != 1 {
			t.Errorf("expected 1 account, got %d", len(repo.accounts))
		}
	})
}
