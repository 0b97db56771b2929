// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/application/usecase/category"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Type string `json:"type" binding:"required,oneof=expense income"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Type *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a category use case output to a CategoryResponse DTO.
func ToCategoryResponse(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		Type:      string(output.Type),
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

// ToCategoryListResponse converts category outputs to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = ToCategoryResponse(output)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
