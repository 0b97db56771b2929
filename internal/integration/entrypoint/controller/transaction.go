// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/usecase/transaction"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests. An optional date query parameter
// (YYYY-MM-DD) scopes the list to one calendar day.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}
	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transactionID)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.CreateTransactionInput{
		Type:        req.Type,
		Description: req.Description,
		Amount:      entity.ParseAmount(req.Amount),
		Notes:       req.Notes,
	}

	var ok bool
	if input.CategoryID, ok = parseOptionalUUID(req.CategoryID); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if input.AccountID, ok = parseOptionalUUID(req.AccountID); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}
	if input.Date, ok = parseOptionalDate(req.Date); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		ID:          transactionID,
		Type:        req.Type,
		Description: req.Description,
		Notes:       req.Notes,
	}
	if req.Amount != nil {
		amount := entity.ParseAmount(req.Amount)
		input.Amount = &amount
	}

	var ok bool
	if input.CategoryID, ok = parseOptionalUUID(req.CategoryID); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if input.AccountID, ok = parseOptionalUUID(req.AccountID); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}
	if input.Date, ok = parseOptionalDate(req.Date); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transactionID); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeDescriptionRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseOptionalUUID parses a nullable id string. The second return value is
// false when the string is present but malformed.
func parseOptionalUUID(s *string) (*uuid.UUID, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// parseOptionalDate parses a nullable YYYY-MM-DD string into local midnight.
func parseOptionalDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	date, err := time.ParseInLocation("2006-01-02", *s, time.Local)
	if err != nil {
		return nil, false
	}
	return &date, true
}
