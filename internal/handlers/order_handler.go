package handlers

import (
	"net/http"

	"food_order/internal/middleware"
	"food_order/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var req struct {
		Items        []services.CartItem `json:"items"`
		Address      string              `json:"address"`
		DeliveryTime string              `json:"delivery_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	orderID, err := h.orderService.PlaceOrder(claims.UserID, req.Items, req.Address, req.DeliveryTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "order placed",
		"orderId": orderID,
	})
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	orders, err := h.orderService.GetOrdersByUser(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	id, ok := paramID(c)
	if !ok {
		return
	}

	order, items, err := h.orderService.GetOrderDetail(id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Only the owner or an admin may see an order.
	if !claims.IsAdmin() && order.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	if err := h.orderService.UpdateStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
