// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/cashflow-tracker/backend/internal/application/usecase/analysis"
)

// AnalysisItemResponse represents one ranked bucket in an analysis response.
// The percentages are per direction: income as a share of total income,
// expense as a share of total expenses.
type AnalysisItemResponse struct {
	Name           string `json:"name"`
	Income         string `json:"income"`
	Expense        string `json:"expense"`
	Total          string `json:"total"`
	IncomePercent  string `json:"income_percent"`
	ExpensePercent string `json:"expense_percent"`
}

// AnalysisPeriodResponse represents one period bucket in an analysis response.
type AnalysisPeriodResponse struct {
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// AnalysisResponse represents the analysis result in API responses. Items is
// populated for category and account analyses, Periods for period analyses.
type AnalysisResponse struct {
	Type    string                   `json:"type"`
	Income  string                   `json:"income"`
	Expense string                   `json:"expense"`
	Balance string                   `json:"balance"`
	Items   []AnalysisItemResponse   `json:"items,omitempty"`
	Periods []AnalysisPeriodResponse `json:"periods,omitempty"`
}

// ToAnalysisResponse converts an analysis use case output to an AnalysisResponse DTO.
func ToAnalysisResponse(output *analysis.GenerateAnalysisOutput) AnalysisResponse {
	response := AnalysisResponse{
		Type:    string(output.Kind),
		Income:  output.Summary.Income.String(),
		Expense: output.Summary.Expense.String(),
		Balance: output.Summary.Balance.String(),
	}
	for _, item := range output.Items {
		response.Items = append(response.Items, AnalysisItemResponse{
			Name:           item.Name,
			Income:         item.Income.String(),
			Expense:        item.Expense.String(),
			Total:          item.Total.String(),
			IncomePercent:  item.IncomePercent.String(),
			ExpensePercent: item.ExpensePercent.String(),
		})
	}
	for _, period := range output.Periods {
		response.Periods = append(response.Periods, AnalysisPeriodResponse{
			Label:   period.Label,
			Income:  period.Income.String(),
			Expense: period.Expense.String(),
			Balance: period.Balance.String(),
		})
	}
	return response
}
