// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/cashflow-tracker/backend/internal/application/usecase/cashflow"
)

// SummaryCategoryResponse represents one ranked category bucket in the
// summary response.
type SummaryCategoryResponse struct {
	Name    string `json:"name"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Total   string `json:"total"`
}

// SummaryResponse represents the cash-flow summary in API responses.
type SummaryResponse struct {
	Income     string                    `json:"income"`
	Expense    string                    `json:"expense"`
	Balance    string                    `json:"balance"`
	Count      int                       `json:"count"`
	Categories []SummaryCategoryResponse `json:"categories"`
}

// ToSummaryResponse converts a summary use case output to a SummaryResponse DTO.
func ToSummaryResponse(output *cashflow.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Income:     output.Summary.Income.String(),
		Expense:    output.Summary.Expense.String(),
		Balance:    output.Summary.Balance.String(),
		Count:      output.Summary.Count,
		Categories: make([]SummaryCategoryResponse, 0, len(output.Buckets)),
	}
	for _, bucket := range output.Buckets {
		response.Categories = append(response.Categories, SummaryCategoryResponse{
			Name:    bucket.Name,
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
			Total:   bucket.Total().String(),
		})
	}
	return response
}
