package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, category := range f.categories {
		if category.ID == id {
			copied := *category
			return &copied, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = category
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

type stubTransactionRepo struct {
	countByCategory map[uuid.UUID]int64
}

func (s *stubTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTransactionRepo) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func (s *stubTransactionRepo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return 0, errors.New("not implemented")
}

func (s *stubTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return s.countByCategory[categoryID], nil
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	t.Run("creates a category", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{Name: " Ventas ", Type: "income"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Ventas" || output.Category.Type != entity.CategoryTypeIncome {
			t.Errorf("unexpected category: %+v", output.Category)
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepo{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{Name: " ", Type: "income"})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryNameRequired {
			t.Fatalf("expected ErrCodeCategoryNameRequired, got %v", err)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepo{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{Name: "Ventas", Type: "transfer"})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeInvalidCategoryType {
			t.Fatalf("expected ErrCodeInvalidCategoryType, got %v", err)
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		entity.NewCategory("Ventas", entity.CategoryTypeIncome),
		entity.NewCategory("Proveedores", entity.CategoryTypeExpense),
		entity.NewCategory("Servicios", entity.CategoryTypeIncome),
	}}
	uc := NewListCategoriesUseCase(repo)

	t.Run("lists everything without a filter", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListCategoriesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 3 {
			t.Errorf("expected 3 categories, got %d", len(output.Categories))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListCategoriesInput{Type: "income"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Fatalf("expected 2 income categories, got %d", len(output.Categories))
		}
		for _, category := range output.Categories {
			if category.Type != entity.CategoryTypeIncome {
				t.Errorf("unexpected type %s for %q", category.Type, category.Name)
			}
		}
	})
}

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	existing := entity.NewCategory("Ventas", entity.CategoryTypeIncome)
	repo := &fakeCategoryRepo{categories: []*entity.Category{existing}}
	uc := NewUpdateCategoryUseCase(repo)

	name := "Ventas Mostrador"
	output, err := uc.Execute(context.Background(), UpdateCategoryInput{ID: existing.ID, Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Category.Name != "Ventas Mostrador" {
		t.Errorf("expected renamed category, got %q", output.Category.Name)
	}
	if output.Category.Type != entity.CategoryTypeIncome {
		t.Errorf("type changed unexpectedly: %s", output.Category.Type)
	}
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	t.Run("deletes an unreferenced category", func(t *testing.T) {
		existing := entity.NewCategory("Ventas", entity.CategoryTypeIncome)
		repo := &fakeCategoryRepo{categories: []*entity.Category{existing}}
		uc := NewDeleteCategoryUseCase(repo, &stubTransactionRepo{})

		if err := uc.Execute(context.Background(), existing.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.categories) != 0 {
			t.Errorf("expected category to be removed, %d remain", len(repo.categories))
		}
	})

	t.Run("refuses to delete a referenced category", func(t *testing.T) {
		existing := entity.NewCategory("Ventas", entity.CategoryTypeIncome)
		repo := &fakeCategoryRepo{categories: []*entity.Category{existing}}
		txRepo := &stubTransactionRepo{countByCategory: map[uuid.UUID]int64{existing.ID: 3}}
		uc := NewDeleteCategoryUseCase(repo, txRepo)

		err := uc.Execute(context.Background(), existing.ID)
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryHasTransactions {
			t.Fatalf("expected ErrCodeCategoryHasTransactions, got %v", err)
		}
	})
}
