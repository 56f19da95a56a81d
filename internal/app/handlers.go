package app

import (
	"github.com/yungbote/mealplanner-backend/internal/http/handlers"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler

	Recipe       *handlers.RecipeHandler
	MealPlan     *handlers.MealPlanHandler
	ShoppingList *handlers.ShoppingListHandler
	Substitution *handlers.SubstitutionHandler

	Billing *handlers.BillingHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: handlers.NewHealthHandler(),
		Auth:   handlers.NewAuthHandler(services.Auth),
		User:   handlers.NewUserHandler(services.User),

		Recipe:       handlers.NewRecipeHandler(services.Recipe),
		MealPlan:     handlers.NewMealPlanHandler(services.MealPlan),
		ShoppingList: handlers.NewShoppingListHandler(services.ShoppingList),
		Substitution: handlers.NewSubstitutionHandler(services.Substitution),

		Billing: handlers.NewBillingHandler(services.Billing),
	}
}
