package server

import (
	"github.com/gin-gonic/gin"
	"github.com/yungbote/mealplanner-backend/internal/http/handlers"
	"github.com/yungbote/mealplanner-backend/internal/http/middleware"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AvatarDir      string
	AvatarRoute    string
	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler       *handlers.HealthHandler
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	RecipeHandler       *handlers.RecipeHandler
	MealPlanHandler     *handlers.MealPlanHandler
	ShoppingListHandler *handlers.ShoppingListHandler
	SubstitutionHandler *handlers.SubstitutionHandler
	BillingHandler      *handlers.BillingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	if cfg.AvatarDir != "" && cfg.AvatarRoute != "" {
		router.Static(cfg.AvatarRoute, cfg.AvatarDir)
	}

	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.GET("/billing/price", cfg.BillingHandler.GetPrice)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)

	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.GET("/user/subscription", cfg.UserHandler.GetSubscription)
	protected.GET("/user/preferences", cfg.UserHandler.GetPreferences)
	protected.PUT("/user/preferences", cfg.UserHandler.UpdatePreferences)

	// Recipes
	protected.GET("/recipes", cfg.RecipeHandler.List)
	protected.POST("/recipes", cfg.RecipeHandler.Create)
	protected.POST("/recipes/generate", cfg.RecipeHandler.Generate)

	// Meal plans
	protected.GET("/meal-plans", cfg.MealPlanHandler.List)
	protected.POST("/meal-plans/generate", cfg.MealPlanHandler.Generate)

	// Shopping lists
	protected.GET("/shopping-lists", cfg.ShoppingListHandler.List)
	protected.POST("/shopping-lists/generate", cfg.ShoppingListHandler.Generate)
	protected.PATCH("/shopping-lists/:id/items/:itemId", cfg.ShoppingListHandler.ToggleItem)

	// Substitutions
	protected.POST("/substitutions", cfg.SubstitutionHandler.Suggest)

	return router
}
