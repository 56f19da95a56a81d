package planner

import (
	"context"

	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type MealPlanItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.MealPlanItem) ([]*types.MealPlanItem, error)
}

type mealPlanItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealPlanItemRepo(db *gorm.DB, baseLog *logger.Logger) MealPlanItemRepo {
	repoLog := baseLog.With("repo", "MealPlanItemRepo")
	return &mealPlanItemRepo{db: db, log: repoLog}
}

func (ir *mealPlanItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.MealPlanItem) ([]*types.MealPlanItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if len(items) == 0 {
		return []*types.MealPlanItem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
