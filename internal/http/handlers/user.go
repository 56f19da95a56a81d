package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/http/response"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /user
func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": me})
}

// GET /user/subscription
func (uh *UserHandler) GetSubscription(c *gin.Context) {
	status, err := uh.userService.GetSubscriptionStatus(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, status)
}

// GET /user/preferences
func (uh *UserHandler) GetPreferences(c *gin.Context) {
	prefs, err := uh.userService.GetPreferences(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, prefs)
}

// PUT /user/preferences
func (uh *UserHandler) UpdatePreferences(c *gin.Context) {
	var req types.DietaryPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	saved, err := uh.userService.UpdatePreferences(c.Request.Context(), &req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, saved)
}
