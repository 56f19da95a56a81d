package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ShoppingListItemRepo interface {
	// GetByIDForList returns nil without error when the item does not belong
	// to the given list.
	GetByIDForList(ctx context.Context, tx *gorm.DB, itemID, listID uuid.UUID) (*types.ShoppingListItem, error)
	UpdateIsChecked(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, isChecked bool) error
}

type shoppingListItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShoppingListItemRepo(db *gorm.DB, baseLog *logger.Logger) ShoppingListItemRepo {
	repoLog := baseLog.With("repo", "ShoppingListItemRepo")
	return &shoppingListItemRepo{db: db, log: repoLog}
}

func (ir *shoppingListItemRepo) GetByIDForList(ctx context.Context, tx *gorm.DB, itemID, listID uuid.UUID) (*types.ShoppingListItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var result types.ShoppingListItem
	err := transaction.WithContext(ctx).
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (ir *shoppingListItemRepo) UpdateIsChecked(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, isChecked bool) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ShoppingListItem{}).
		Where("id = ?", itemID).
		Update("is_checked", isChecked).Error
}
