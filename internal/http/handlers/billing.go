package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yungbote/mealplanner-backend/internal/http/response"
	"github.com/yungbote/mealplanner-backend/internal/services"
)

type BillingHandler struct {
	billingService services.BillingService
}

func NewBillingHandler(billingService services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GET /api/billing/price
func (bh *BillingHandler) GetPrice(c *gin.Context) {
	price, err := bh.billingService.GetPriceID(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, price)
}
