package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string, ingredients []types.RecipeIngredient) *types.Recipe {
	tb.Helper()
	raw, err := json.Marshal(ingredients)
	if err != nil {
		tb.Fatalf("marshal ingredients: %v", err)
	}
	r := &types.Recipe{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Servings:     2,
		Ingredients:  datatypes.JSON(raw),
		Instructions: datatypes.JSON([]byte("[]")),
		MealType:     datatypes.JSON([]byte(`["dinner"]`)),
		DietTags:     datatypes.JSON([]byte("[]")),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return r
}

func SeedMealPlan(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) *types.MealPlan {
	tb.Helper()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p := &types.MealPlan{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed meal plan: %v", err)
	}
	return p
}

func SeedMealPlanItem(tb testing.TB, ctx context.Context, tx *gorm.DB, planID, recipeID uuid.UUID, servings int) *types.MealPlanItem {
	tb.Helper()
	it := &types.MealPlanItem{
		ID:         uuid.New(),
		MealPlanID: planID,
		RecipeID:   recipeID,
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		MealType:   "dinner",
		Servings:   servings,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed meal plan item: %v", err)
	}
	return it
}
