// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a transaction category. Type is assumed stable for a
// given id once transactions reference it; the engine never checks this.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType) *Category {
	now := time.Now()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidCategoryType reports whether the given type is one of the two
// supported category types.
func IsValidCategoryType(categoryType CategoryType) bool {
	return categoryType == CategoryTypeExpense || categoryType == CategoryTypeIncome
}
