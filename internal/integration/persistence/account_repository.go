// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db       *gorm.DB
	notifier adapter.ChangeNotifier
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB, notifier adapter.ChangeNotifier) adapter.AccountRepository {
	return &accountRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	r.notifier.NotifyChanged(ctx, adapter.CollectionAccounts)
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAll retrieves all accounts ordered by name.
func (r *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	r.notifier.NotifyChanged(ctx, adapter.CollectionAccounts)
	return nil
}

// Delete removes an account from the database.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	r.notifier.NotifyChanged(ctx, adapter.CollectionAccounts)
	return nil
}
