// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Type string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *CategoryOutput
}

// CategoryOutput represents a category in use case outputs.
type CategoryOutput struct {
	ID        uuid.UUID
	Name      string
	Type      entity.CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	categoryType := entity.CategoryType(input.Type)
	if !entity.IsValidCategoryType(categoryType) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			fmt.Sprintf("invalid category type: %s", input.Type),
			domainerror.ErrInvalidCategoryType,
		)
	}

	category := entity.NewCategory(name, categoryType)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: toCategoryOutput(category)}, nil
}

func toCategoryOutput(category *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
