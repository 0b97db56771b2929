// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/cashflow-tracker/backend/internal/domain/report"
)

// DailyClosureDocumentResponse wraps the printable document model.
type DailyClosureDocumentResponse struct {
	Document *report.Document `json:"document"`
}

// DailyClosureMessageResponse wraps the text message model.
type DailyClosureMessageResponse struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

// ToDailyClosureMessageResponse converts a report message to its response DTO.
func ToDailyClosureMessageResponse(message *report.Message) DailyClosureMessageResponse {
	return DailyClosureMessageResponse{
		Lines: message.Lines,
		Text:  message.String(),
	}
}
