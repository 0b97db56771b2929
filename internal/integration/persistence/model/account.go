// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		Name:      m.Name,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		Name:      account.Name,
		Active:    account.Active,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
