// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/application/usecase/analysis"
	"github.com/cashflow-tracker/backend/internal/domain/aggregation"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// msgNoAnalysisData is shown when the requested range has no transactions.
const msgNoAnalysisData = "No hay movimientos en el período seleccionado"

// AnalysisController handles the analysis endpoint.
type AnalysisController struct {
	generateUseCase *analysis.GenerateAnalysisUseCase
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(generateUseCase *analysis.GenerateAnalysisUseCase) *AnalysisController {
	return &AnalysisController{
		generateUseCase: generateUseCase,
	}
}

// Generate handles GET /analysis requests. Query parameters: type
// (category|account|period), start and end (YYYY-MM-DD), and period
// (daily|weekly|monthly|yearly) when type is period.
func (c *AnalysisController) Generate(ctx *gin.Context) {
	input := analysis.GenerateAnalysisInput{
		Kind:   analysis.AnalysisKind(ctx.Query("type")),
		Period: aggregation.PeriodKind(ctx.Query("period")),
	}

	if startStr := ctx.Query("start"); startStr != "" {
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingStartDate),
			})
			return
		}
		input.Start = &start
	}
	if endStr := ctx.Query("end"); endStr != "" {
		end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingEndDate),
			})
			return
		}
		input.End = &end
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalysisError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(output))
}

// handleAnalysisError handles analysis errors and returns appropriate HTTP responses.
func (c *AnalysisController) handleAnalysisError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrEmptyResult) {
		ctx.JSON(http.StatusOK, dto.EmptyResponse{
			Empty:   true,
			Message: msgNoAnalysisData,
		})
		return
	}

	var anlErr *domainerror.AnalysisError
	if errors.As(err, &anlErr) {
		status := http.StatusBadRequest
		if anlErr.Code == domainerror.ErrCodeAnalysisInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
