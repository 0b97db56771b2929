// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/application/usecase/cashflow"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// CashflowController handles the summary endpoint.
type CashflowController struct {
	summaryUseCase *cashflow.GetSummaryUseCase
}

// NewCashflowController creates a new cashflow controller instance.
func NewCashflowController(summaryUseCase *cashflow.GetSummaryUseCase) *CashflowController {
	return &CashflowController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /cashflow/summary requests. An optional date query
// parameter (YYYY-MM-DD) scopes the summary to one calendar day. An empty
// scope is a 200 with an empty-state payload, never an error.
func (c *CashflowController) Summary(ctx *gin.Context) {
	input := cashflow.GetSummaryInput{}
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

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	if output.Empty {
		ctx.JSON(http.StatusOK, dto.EmptyResponse{
			Empty:   true,
			Message: output.Message,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
