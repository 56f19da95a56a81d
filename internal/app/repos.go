package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
)

type Repos struct {
	User               repos.UserRepo
	DietaryPreferences repos.DietaryPreferencesRepo
	UserToken          repos.UserTokenRepo

	Recipe       repos.RecipeRepo
	MealPlan     repos.MealPlanRepo
	MealPlanItem repos.MealPlanItemRepo

	ShoppingList     repos.ShoppingListRepo
	ShoppingListItem repos.ShoppingListItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:               repos.NewUserRepo(db, log),
		DietaryPreferences: repos.NewDietaryPreferencesRepo(db, log),
		UserToken:          repos.NewUserTokenRepo(db, log),

		Recipe:       repos.NewRecipeRepo(db, log),
		MealPlan:     repos.NewMealPlanRepo(db, log),
		MealPlanItem: repos.NewMealPlanItemRepo(db, log),

		ShoppingList:     repos.NewShoppingListRepo(db, log),
		ShoppingListItem: repos.NewShoppingListItemRepo(db, log),
	}
}
