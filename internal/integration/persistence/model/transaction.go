// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// CategoryName and AccountName are write-time snapshots: they are never
// rewritten when the referenced record is renamed or deleted.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryName string          `gorm:"type:varchar(255)"`
	AccountID    *uuid.UUID      `gorm:"type:uuid;index"`
	AccountName  string          `gorm:"type:varchar(255)"`
	Date         *time.Time      `gorm:"type:timestamp;index"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Type:         entity.TransactionType(m.Type),
		Description:  m.Description,
		Amount:       m.Amount,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		AccountID:    m.AccountID,
		AccountName:  m.AccountName,
		Date:         m.Date,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		Type:         string(transaction.Type),
		Description:  transaction.Description,
		Amount:       transaction.Amount,
		CategoryID:   transaction.CategoryID,
		CategoryName: transaction.CategoryName,
		AccountID:    transaction.AccountID,
		AccountName:  transaction.AccountName,
		Date:         transaction.Date,
		Notes:        transaction.Notes,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
