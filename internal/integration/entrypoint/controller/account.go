// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/usecase/account"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase   *account.ListAccountsUseCase
	getUseCase    *account.GetAccountUseCase
	createUseCase *account.CreateAccountUseCase
	updateUseCase *account.UpdateAccountUseCase
	deleteUseCase *account.DeleteAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	getUseCase *account.GetAccountUseCase,
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), accountID)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeAccountNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		Name: req.Name,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), account.UpdateAccountInput{
		ID:     accountID,
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), accountID); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		ctx.JSON(c.getStatusCodeForAccountError(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrAccountNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Account not found",
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountHasTransactions:
		return http.StatusConflict
	case domainerror.ErrCodeAccountNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
