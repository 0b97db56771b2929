// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories. An empty
// Type lists every category.
type ListCategoriesInput struct {
	Type string
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles listing categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves categories, optionally filtered by type.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(categories)),
	}
	for _, category := range categories {
		if input.Type != "" && category.Type != entity.CategoryType(input.Type) {
			continue
		}
		output.Categories = append(output.Categories, toCategoryOutput(category))
	}

	return output, nil
}
