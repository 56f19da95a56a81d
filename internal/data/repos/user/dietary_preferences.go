package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type DietaryPreferencesRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.DietaryPreferences, error)
	Upsert(ctx context.Context, tx *gorm.DB, prefs *types.DietaryPreferences) (*types.DietaryPreferences, error)
}

type dietaryPreferencesRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDietaryPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) DietaryPreferencesRepo {
	repoLog := baseLog.With("repo", "DietaryPreferencesRepo")
	return &dietaryPreferencesRepo{db: db, log: repoLog}
}

// GetByUserID returns nil without error when the user has no stored
// preferences yet.
func (pr *dietaryPreferencesRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.DietaryPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.DietaryPreferences
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (pr *dietaryPreferencesRepo) Upsert(ctx context.Context, tx *gorm.DB, prefs *types.DietaryPreferences) (*types.DietaryPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	existing, err := pr.GetByUserID(ctx, transaction, prefs.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		prefs.ID = existing.ID
		prefs.CreatedAt = existing.CreatedAt
		if err := transaction.WithContext(ctx).Save(prefs).Error; err != nil {
			return nil, err
		}
		return prefs, nil
	}

	if prefs.ID == uuid.Nil {
		prefs.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
