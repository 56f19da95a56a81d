package repos

import (
	"github.com/yungbote/mealplanner-backend/internal/data/repos/auth"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/planner"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/recipes"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/shopping"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/user"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo
type DietaryPreferencesRepo = user.DietaryPreferencesRepo
type UserTokenRepo = auth.UserTokenRepo

type RecipeRepo = recipes.RecipeRepo

type MealPlanRepo = planner.MealPlanRepo
type MealPlanItemRepo = planner.MealPlanItemRepo

type ShoppingListRepo = shopping.ShoppingListRepo
type ShoppingListItemRepo = shopping.ShoppingListItemRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewDietaryPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) DietaryPreferencesRepo {
	return user.NewDietaryPreferencesRepo(db, baseLog)
}
func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, baseLog)
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return recipes.NewRecipeRepo(db, baseLog)
}

func NewMealPlanRepo(db *gorm.DB, baseLog *logger.Logger) MealPlanRepo {
	return planner.NewMealPlanRepo(db, baseLog)
}
func NewMealPlanItemRepo(db *gorm.DB, baseLog *logger.Logger) MealPlanItemRepo {
	return planner.NewMealPlanItemRepo(db, baseLog)
}

func NewShoppingListRepo(db *gorm.DB, baseLog *logger.Logger) ShoppingListRepo {
	return shopping.NewShoppingListRepo(db, baseLog)
}
func NewShoppingListItemRepo(db *gorm.DB, baseLog *logger.Logger) ShoppingListItemRepo {
	return shopping.NewShoppingListItemRepo(db, baseLog)
}
