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

// UpdateCategoryInput represents the input for a category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	ID   uuid.UUID
	Name *string
	Type *string
}

// UpdateCategoryOutput represents the output of a category update.
type UpdateCategoryOutput struct {
	Category *CategoryOutput
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update. Renaming a category never rewrites
// the denormalized name snapshots on historical transactions.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameRequired,
				"category name is required",
				domainerror.ErrCategoryNameRequired,
			)
		}
		category.Name = name
	}

	if input.Type != nil {
		categoryType := entity.CategoryType(*input.Type)
		if !entity.IsValidCategoryType(categoryType) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				fmt.Sprintf("invalid category type: %s", *input.Type),
				domainerror.ErrInvalidCategoryType,
			)
		}
		category.Type = categoryType
	}

	category.UpdatedAt = time.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: toCategoryOutput(category)}, nil
}
