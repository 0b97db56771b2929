// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Amount is deliberately loose-typed: clients historically sent
// numbers and strings interchangeably, and the coercion to a decimal happens
// at this edge.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      any     `json:"amount" binding:"required"`
	CategoryID  *string `json:"category_id,omitempty"`
	AccountID   *string `json:"account_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      any     `json:"amount,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	AccountID   *string `json:"account_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	Amount       string     `json:"amount"`
	CategoryID   *string    `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	AccountID    *string    `json:"account_id,omitempty"`
	AccountName  string     `json:"account_name,omitempty"`
	Date         *string    `json:"date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a transaction use case output to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:           output.ID.String(),
		Type:         string(output.Type),
		Description:  output.Description,
		Amount:       output.Amount.String(),
		CategoryName: output.CategoryName,
		AccountName:  output.AccountName,
		Notes:        output.Notes,
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
	if output.CategoryID != nil {
		id := output.CategoryID.String()
		response.CategoryID = &id
	}
	if output.AccountID != nil {
		id := output.AccountID.String()
		response.AccountID = &id
	}
	if output.Date != nil {
		date := output.Date.Format("2006-01-02")
		response.Date = &date
	}
	return response
}

// ToTransactionListResponse converts transaction outputs to TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	}
}
