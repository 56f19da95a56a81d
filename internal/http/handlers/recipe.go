package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/http/response"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type RecipeHandler struct {
	recipeService services.RecipeService
}

func NewRecipeHandler(recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// GET /recipes
func (rh *RecipeHandler) List(c *gin.Context) {
	recipes, err := rh.recipeService.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": recipes})
}

// POST /recipes
func (rh *RecipeHandler) Create(c *gin.Context) {
	var req types.Recipe
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	created, err := rh.recipeService.Create(c.Request.Context(), &req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

// POST /recipes/generate
// body: { "meal_type", "additional_instructions" }
func (rh *RecipeHandler) Generate(c *gin.Context) {
	var req services.GenerateRecipeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	recipe, err := rh.recipeService.Generate(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, recipe)
}
