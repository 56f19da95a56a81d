package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yungbote/mealplanner-backend/internal/http/response"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type SubstitutionHandler struct {
	substitutionService services.SubstitutionService
}

func NewSubstitutionHandler(substitutionService services.SubstitutionService) *SubstitutionHandler {
	return &SubstitutionHandler{substitutionService: substitutionService}
}

// POST /substitutions
// body: { "ingredient", "reason" }
func (sh *SubstitutionHandler) Suggest(c *gin.Context) {
	var req services.SubstitutionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	result, err := sh.substitutionService.Suggest(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, result)
}
