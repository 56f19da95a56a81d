package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/http/response"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type ShoppingListHandler struct {
	shoppingService services.ShoppingListService
}

func NewShoppingListHandler(shoppingService services.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingService: shoppingService}
}

// GET /shopping-lists
func (sh *ShoppingListHandler) List(c *gin.Context) {
	lists, err := sh.shoppingService.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shopping_lists": lists})
}

// POST /shopping-lists/generate
// body: { "meal_plan_id": "..." }
func (sh *ShoppingListHandler) Generate(c *gin.Context) {
	var req struct {
		MealPlanID string `json:"meal_plan_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if req.MealPlanID == "" {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("meal_plan_id required"))
		return
	}
	planID, err := uuid.Parse(req.MealPlanID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("meal_plan_id must be a uuid"))
		return
	}

	list, err := sh.shoppingService.GenerateFromPlan(c.Request.Context(), planID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, list)
}

// PATCH /shopping-lists/:id/items/:itemId
// body: { "is_checked": bool }
func (sh *ShoppingListHandler) ToggleItem(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("list id must be a uuid"))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("item id must be a uuid"))
		return
	}

	var req struct {
		IsChecked *bool `json:"is_checked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if req.IsChecked == nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, fmt.Errorf("is_checked required"))
		return
	}

	item, err := sh.shoppingService.ToggleItem(c.Request.Context(), listID, itemID, *req.IsChecked)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, item)
}
