package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ShoppingListRepo interface {
	// CreateWithItems persists the list and all of its items in one Create.
	// Callers pass a transaction when the write must be atomic with other
	// work; the items ride along via the association.
	CreateWithItems(ctx context.Context, tx *gorm.DB, list *types.ShoppingList) (*types.ShoppingList, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ShoppingList, error)
	// GetByIDForUser loads a list with its items ordered by category,
	// scoped to the owning user. Returns nil without error when absent.
	GetByIDForUser(ctx context.Context, tx *gorm.DB, listID, userID uuid.UUID) (*types.ShoppingList, error)
}

type shoppingListRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShoppingListRepo(db *gorm.DB, baseLog *logger.Logger) ShoppingListRepo {
	repoLog := baseLog.With("repo", "ShoppingListRepo")
	return &shoppingListRepo{db: db, log: repoLog}
}

func (sr *shoppingListRepo) CreateWithItems(ctx context.Context, tx *gorm.DB, list *types.ShoppingList) (*types.ShoppingList, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if err := transaction.WithContext(ctx).Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (sr *shoppingListRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ShoppingList, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.ShoppingList
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_item.category ASC")
		}).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *shoppingListRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, listID, userID uuid.UUID) (*types.ShoppingList, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.ShoppingList
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_item.category ASC")
		}).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
