package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"github.com/yungbote/mealplanner-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, h Handlers, mw Middleware) *gin.Engine {
	log.Info("Wiring router...")
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		ServiceName:    cfg.ServiceName,
		AvatarDir:      cfg.AvatarDir,
		AvatarRoute:    cfg.AvatarRoute,
		AuthMiddleware: mw.Auth,

		HealthHandler:       h.Health,
		AuthHandler:         h.Auth,
		UserHandler:         h.User,
		RecipeHandler:       h.Recipe,
		MealPlanHandler:     h.MealPlan,
		ShoppingListHandler: h.ShoppingList,
		SubstitutionHandler: h.Substitution,
		BillingHandler:      h.Billing,
	})
}
