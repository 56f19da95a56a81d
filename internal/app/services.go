package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type Services struct {
	Avatar services.AvatarService
	Auth   services.AuthService
	User   services.UserService

	Recipe       services.RecipeService
	MealPlan     services.MealPlanService
	ShoppingList services.ShoppingListService
	Substitution services.SubstitutionService

	Billing services.BillingService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	avatarService, err := services.NewAvatarService(log, cfg.AvatarDir, cfg.AvatarRoute)
	if err != nil {
		return Services{}, fmt.Errorf("init avatar service: %w", err)
	}

	authService := services.NewAuthService(
		db, log,
		repos.User,
		repos.UserToken,
		avatarService,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	userService := services.NewUserService(db, log, repos.User, repos.DietaryPreferences)

	recipeService := services.NewRecipeService(db, log, repos.Recipe, repos.User, repos.DietaryPreferences, clients.Openai)

	mealPlanService := services.NewMealPlanService(
		db, log,
		repos.MealPlan,
		repos.MealPlanItem,
		repos.Recipe,
		repos.User,
		repos.DietaryPreferences,
		clients.Openai,
	)

	shoppingListService := services.NewShoppingListService(db, log, repos.ShoppingList, repos.ShoppingListItem, repos.MealPlan)

	substitutionService := services.NewSubstitutionService(log, repos.User, repos.DietaryPreferences, clients.Openai)

	billingService := services.NewBillingService(log, clients.Redis, cfg.BillingCacheTTL)

	return Services{
		Avatar:       avatarService,
		Auth:         authService,
		User:         userService,
		Recipe:       recipeService,
		MealPlan:     mealPlanService,
		ShoppingList: shoppingListService,
		Substitution: substitutionService,
		Billing:      billingService,
	}, nil
}
