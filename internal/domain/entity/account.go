// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a money holding (cash box, bank account, wallet).
// Accounts are deactivated rather than deleted while transactions still
// reference them.
type Account struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity, active by default.
func NewAccount(name string) *Account {
	now := time.Now()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultAccountNames are seeded the first time the accounts collection is
// found empty.
var DefaultAccountNames = []string{
	"EFECTIVO",
	"DÉBITO SANTANDER",
	"CRÉDITO VISA SANTANDER",
	"MERCADO PAGO",
}
