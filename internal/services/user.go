package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/requestdata"
	"gorm.io/gorm"
)

// SubscriptionStatus is the entitlement view returned to clients.
type SubscriptionStatus struct {
	IsSubscribed     bool       `json:"is_subscribed"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	PriceID          string     `json:"price_id,omitempty"`
}

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	GetSubscriptionStatus(ctx context.Context) (*SubscriptionStatus, error)
	GetPreferences(ctx context.Context) (*types.DietaryPreferences, error)
	UpdatePreferences(ctx context.Context, prefs *types.DietaryPreferences) (*types.DietaryPreferences, error)
}

type userService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	prefsRepo repos.DietaryPreferencesRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, prefsRepo repos.DietaryPreferencesRepo) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo, prefsRepo: prefsRepo}
}

func (us *userService) currentUser(ctx context.Context) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load user: %w", err))
	}
	if len(users) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("user not found"))
	}
	return users[0], nil
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	return us.currentUser(ctx)
}

func (us *userService) GetSubscriptionStatus(ctx context.Context) (*SubscriptionStatus, error) {
	user, err := us.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return &SubscriptionStatus{
		IsSubscribed:     user.HasActiveSubscription(time.Now()),
		CurrentPeriodEnd: user.StripeCurrentPeriodEnd,
		PriceID:          user.StripePriceID,
	}, nil
}

// GetPreferences returns stored preferences or defaults when none exist yet.
func (us *userService) GetPreferences(ctx context.Context) (*types.DietaryPreferences, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	prefs, err := us.prefsRepo.GetByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load preferences: %w", err))
	}
	if prefs == nil {
		return &types.DietaryPreferences{
			UserID:          rd.UserID,
			ServingsPerMeal: 2,
		}, nil
	}
	return prefs, nil
}

func (us *userService) UpdatePreferences(ctx context.Context, prefs *types.DietaryPreferences) (*types.DietaryPreferences, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	if prefs == nil {
		return nil, apierr.Validation(fmt.Errorf("preferences required"))
	}
	prefs.UserID = rd.UserID
	if prefs.ServingsPerMeal <= 0 {
		prefs.ServingsPerMeal = 2
	}

	var saved *types.DietaryPreferences
	txErr := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		out, err := us.prefsRepo.Upsert(ctx, tx, prefs)
		if err != nil {
			return apierr.Storage(fmt.Errorf("upsert preferences: %w", err))
		}
		saved = out
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return saved, nil
}
