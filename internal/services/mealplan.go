package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/clients/openai"
	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/requestdata"
	"gorm.io/gorm"
)

type GenerateMealPlanInput struct {
	Days        int      `json:"days"`
	MealsPerDay []string `json:"meals_per_day"`
	StartDate   string   `json:"start_date"`
}

type MealPlanService interface {
	List(ctx context.Context) ([]*types.MealPlan, error)
	Generate(ctx context.Context, input GenerateMealPlanInput) (*types.MealPlan, error)
}

type mealPlanService struct {
	db           *gorm.DB
	log          *logger.Logger
	planRepo     repos.MealPlanRepo
	planItemRepo repos.MealPlanItemRepo
	recipeRepo   repos.RecipeRepo
	userRepo     repos.UserRepo
	prefsRepo    repos.DietaryPreferencesRepo
	ai           openai.Client
}

func NewMealPlanService(
	db *gorm.DB,
	baseLog *logger.Logger,
	planRepo repos.MealPlanRepo,
	planItemRepo repos.MealPlanItemRepo,
	recipeRepo repos.RecipeRepo,
	userRepo repos.UserRepo,
	prefsRepo repos.DietaryPreferencesRepo,
	ai openai.Client,
) MealPlanService {
	serviceLog := baseLog.With("service", "MealPlanService")
	return &mealPlanService{
		db:           db,
		log:          serviceLog,
		planRepo:     planRepo,
		planItemRepo: planItemRepo,
		recipeRepo:   recipeRepo,
		userRepo:     userRepo,
		prefsRepo:    prefsRepo,
		ai:           ai,
	}
}

func (ms *mealPlanService) List(ctx context.Context) ([]*types.MealPlan, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("no authenticated user"))
	}
	out, err := ms.planRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("list meal plans: %w", err))
	}
	return out, nil
}

type generatedMealPlan struct {
	MealPlan []struct {
		Day   int `json:"day"`
		Meals []struct {
			MealType string          `json:"meal_type"`
			Recipe   generatedRecipe `json:"recipe"`
		} `json:"meals"`
	} `json:"meal_plan"`
}

const mealPlanSystemPrompt = "You are a professional meal planner and nutritionist. " +
	"Create balanced, delicious meal plans that are practical to prepare."

func (ms *mealPlanService) Generate(ctx context.Context, input GenerateMealPlanInput) (*types.MealPlan, error) {
	user, err := requireSubscribedUser(ctx, ms.userRepo)
	if err != nil {
		return nil, err
	}

	days := input.Days
	if days <= 0 {
		days = 7
	}
	if days > 14 {
		return nil, apierr.Validation(fmt.Errorf("days must be at most 14"))
	}
	mealsPerDay := input.MealsPerDay
	if len(mealsPerDay) == 0 {
		mealsPerDay = []string{"breakfast", "lunch", "dinner"}
	}

	start := time.Now().Truncate(24 * time.Hour)
	if s := strings.TrimSpace(input.StartDate); s != "" {
		parsed, pErr := time.Parse("2006-01-02", s)
		if pErr != nil {
			return nil, apierr.Validation(fmt.Errorf("start_date must be YYYY-MM-DD: %w", pErr))
		}
		start = parsed
	}
	end := start.AddDate(0, 0, days-1)

	prefs, err := ms.prefsRepo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("load preferences: %w", err))
	}
	servings := servingsOrDefault(prefs)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-day meal plan with the following requirements:\n\n", days)
	fmt.Fprintf(&b, "Meals per day: %s\n", strings.Join(mealsPerDay, ", "))
	b.WriteString(preferenceLines(prefs))
	if prefs != nil && prefs.CalorieTarget != nil && *prefs.CalorieTarget > 0 {
		fmt.Fprintf(&b, "Daily calorie target: %d\n", *prefs.CalorieTarget)
	}
	fmt.Fprintf(&b, "Servings per meal: %d\n", servings)
	b.WriteString("Generate varied, balanced meals.\n")

	obj, err := ms.ai.GenerateJSON(ctx, mealPlanSystemPrompt, b.String(), "meal_plan", mealPlanSchema())
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("generate meal plan: %w", err))
	}

	var gen generatedMealPlan
	if err := decodeInto(obj, &gen); err != nil {
		return nil, apierr.Upstream(fmt.Errorf("decode generated meal plan: %w", err))
	}
	if len(gen.MealPlan) == 0 {
		return nil, apierr.Upstream(fmt.Errorf("generated meal plan is empty"))
	}

	plan := &types.MealPlan{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      fmt.Sprintf("Weekly Meal Plan - %s", start.Format("1/2/2006")),
		StartDate: start,
		EndDate:   end,
	}

	txErr := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ms.planRepo.Create(ctx, tx, []*types.MealPlan{plan}); err != nil {
			return apierr.Storage(fmt.Errorf("create meal plan: %w", err))
		}

		var recipesToCreate []*types.Recipe
		var itemsToCreate []*types.MealPlanItem
		for _, day := range gen.MealPlan {
			dayDate := start.AddDate(0, 0, day.Day-1)
			for _, meal := range day.Meals {
				gr := meal.Recipe
				if len(gr.MealType) == 0 {
					gr.MealType = []string{meal.MealType}
				}
				recipe, rErr := gr.toRecipe(user.ID)
				if rErr != nil {
					return apierr.Storage(rErr)
				}
				recipesToCreate = append(recipesToCreate, recipe)
				itemsToCreate = append(itemsToCreate, &types.MealPlanItem{
					ID:         uuid.New(),
					MealPlanID: plan.ID,
					RecipeID:   recipe.ID,
					Date:       dayDate,
					MealType:   meal.MealType,
					Servings:   servings,
				})
			}
		}

		if _, err := ms.recipeRepo.Create(ctx, tx, recipesToCreate); err != nil {
			return apierr.Storage(fmt.Errorf("create plan recipes: %w", err))
		}
		if _, err := ms.planItemRepo.Create(ctx, tx, itemsToCreate); err != nil {
			return apierr.Storage(fmt.Errorf("create plan items: %w", err))
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	complete, err := ms.planRepo.GetByIDForUser(ctx, nil, plan.ID, user.ID)
	if err != nil {
		return nil, apierr.Storage(fmt.Errorf("reload meal plan: %w", err))
	}
	if complete == nil {
		return nil, apierr.Storage(fmt.Errorf("meal plan disappeared after create"))
	}
	return complete, nil
}
