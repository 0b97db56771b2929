// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute deletes a category. Categories still referenced by transactions
// are kept so historical groupings stay intact.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := uc.transactionRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryHasTransactions,
			fmt.Sprintf("category has %d associated transactions", count),
			domainerror.ErrCategoryHasTransactions,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
