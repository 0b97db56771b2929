// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/dto"
)

// msgNoReportData is shown when the requested day has no movements.
const msgNoReportData = "No hay movimientos en la fecha seleccionada"

// Report targets.
const (
	targetPrintable = "printable"
	targetText      = "text"
)

// ReportController handles the daily closure report endpoint.
type ReportController struct {
	documentUseCase *report.GetDailyClosureDocumentUseCase
	messageUseCase  *report.GetDailyClosureMessageUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	documentUseCase *report.GetDailyClosureDocumentUseCase,
	messageUseCase *report.GetDailyClosureMessageUseCase,
) *ReportController {
	return &ReportController{
		documentUseCase: documentUseCase,
		messageUseCase:  messageUseCase,
	}
}

// DailyClosure handles GET /reports/daily-closure requests. Query parameters:
// date (YYYY-MM-DD, required) and target (printable|text, defaults to
// printable).
func (c *ReportController) DailyClosure(ctx *gin.Context) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "report date is required",
			Code:  string(domainerror.ErrCodeMissingReportDate),
		})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingReportDate),
		})
		return
	}

	target := ctx.DefaultQuery("target", targetPrintable)
	switch target {
	case targetPrintable:
		output, err := c.documentUseCase.Execute(ctx.Request.Context(), report.GetDailyClosureDocumentInput{Date: date})
		if err != nil {
			c.handleReportError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.DailyClosureDocumentResponse{Document: output.Document})
	case targetText:
		output, err := c.messageUseCase.Execute(ctx.Request.Context(), report.GetDailyClosureMessageInput{Date: date})
		if err != nil {
			c.handleReportError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.ToDailyClosureMessageResponse(output.Message))
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "report target must be: printable or text",
			Code:  string(domainerror.ErrCodeInvalidReportTarget),
		})
	}
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrEmptyResult) {
		ctx.JSON(http.StatusOK, dto.EmptyResponse{
			Empty:   true,
			Message: msgNoReportData,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
