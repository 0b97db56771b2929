// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/application/usecase/account"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Active *bool   `json:"active,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Balance   string    `json:"balance,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts an account use case output to an AccountResponse DTO.
func ToAccountResponse(output *account.AccountOutput) AccountResponse {
	return AccountResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		Active:    output.Active,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

// ToAccountListResponse converts accounts with balances to AccountListResponse.
func ToAccountListResponse(outputs []*account.AccountWithBalance) AccountListResponse {
	accounts := make([]AccountResponse, len(outputs))
	for i, output := range outputs {
		accounts[i] = ToAccountResponse(&output.AccountOutput)
		accounts[i].Balance = output.Balance.String()
	}
	return AccountListResponse{
		Accounts: accounts,
	}
}
