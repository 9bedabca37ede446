package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glasscart/storefront/models"
)

// Order capture is a single insert. Subtotal, shipping, and total
// come from the caller and are stored without recomputation.
type orderRequest struct {
	UserID          string                 `json:"user_id"`
	Items           []models.OrderItem     `json:"items" binding:"required,min=1,dive"`
	Subtotal        float64                `json:"subtotal"`
	Shipping        float64                `json:"shipping"`
	Total           float64                `json:"total"`
	Email           string                 `json:"email" binding:"required,email"`
	ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
	Status          string                 `json:"status"`
}

func (a *API) createOrder(c *gin.Context) {
	if a.Orders == nil {
		a.unavailable(c)
		return
	}
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}

	id, err := a.Orders.Insert(c.Request.Context(), models.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Total:           req.Total,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": id, "status": "received"})
}
