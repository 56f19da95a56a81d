package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yungbote/mealplanner-backend/internal/http/response"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type MealPlanHandler struct {
	mealPlanService services.MealPlanService
}

func NewMealPlanHandler(mealPlanService services.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// GET /meal-plans
func (mh *MealPlanHandler) List(c *gin.Context) {
	plans, err := mh.mealPlanService.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"meal_plans": plans})
}

// POST /meal-plans/generate
// body: { "days", "meals_per_day", "start_date" }
func (mh *MealPlanHandler) Generate(c *gin.Context) {
	var req services.GenerateMealPlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	plan, err := mh.mealPlanService.Generate(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, plan)
}
