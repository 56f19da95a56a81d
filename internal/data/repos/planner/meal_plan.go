package planner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type MealPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plans []*types.MealPlan) ([]*types.MealPlan, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.MealPlan, error)
	// GetByIDForUser loads a plan with its items and their recipes, scoped to
	// the owning user. Returns nil without error when no such plan exists.
	GetByIDForUser(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.MealPlan, error)
}

type mealPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealPlanRepo(db *gorm.DB, baseLog *logger.Logger) MealPlanRepo {
	repoLog := baseLog.With("repo", "MealPlanRepo")
	return &mealPlanRepo{db: db, log: repoLog}
}

func (pr *mealPlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.MealPlan) ([]*types.MealPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(plans) == 0 {
		return []*types.MealPlan{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (pr *mealPlanRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.MealPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.MealPlan
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_plan_item.date ASC, meal_plan_item.meal_type ASC")
		}).
		Preload("Items.Recipe").
		Order("start_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *mealPlanRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.MealPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.MealPlan
	err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Preload("Items").
		Preload("Items.Recipe").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
