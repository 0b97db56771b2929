// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountWithBalance
}

// AccountWithBalance pairs an account with its lifetime running balance
// (income - expense over every transaction that references it).
type AccountWithBalance struct {
	AccountOutput
	Balance decimal.Decimal
}

// ListAccountsUseCase handles listing accounts with their balances.
type ListAccountsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves all accounts with their lifetime balances.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	balances := aggregation.ComputeAccountBalances(transactions)

	output := &ListAccountsOutput{
		Accounts: make([]*AccountWithBalance, 0, len(accounts)),
	}
	for _, account := range accounts {
		balance, ok := balances[account.ID]
		if !ok {
			balance = decimal.Zero
		}
		output.Accounts = append(output.Accounts, &AccountWithBalance{
			AccountOutput: *toAccountOutput(account),
			Balance:       balance,
		})
	}

	return output, nil
}
