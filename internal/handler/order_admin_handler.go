package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// OrderAdminHandler serves the dashboard order endpoints.
type OrderAdminHandler struct {
	orderAdminService *service.OrderAdminService
}

// NewOrderAdminHandler constructs an OrderAdminHandler.
func NewOrderAdminHandler(orderAdminService *service.OrderAdminService) *OrderAdminHandler {
	return &OrderAdminHandler{orderAdminService: orderAdminService}
}

// List handles GET /api/admin/orders
func (h *OrderAdminHandler) List(c *gin.Context) {
	query := &service.ListOrdersQuery{
		Status:    c.Query("status"),
		ProductID: c.Query("product_id"),
		VariantID: c.Query("variant_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	orders, err := h.orderAdminService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Orders retrieved", orders)
}

// Stats handles GET /api/admin/orders/stats
func (h *OrderAdminHandler) Stats(c *gin.Context) {
	stats, err := h.orderAdminService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order stats retrieved", stats)
}

// Get handles GET /api/admin/orders/:id
func (h *OrderAdminHandler) Get(c *gin.Context) {
	order, err := h.orderAdminService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order retrieved", order)
}

// Update handles PATCH /api/admin/orders/:id
func (h *OrderAdminHandler) Update(c *gin.Context) {
	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	order, err := h.orderAdminService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order updated", order)
}

// Delete handles DELETE /api/admin/orders/:id
func (h *OrderAdminHandler) Delete(c *gin.Context) {
	if err := h.orderAdminService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order deleted", nil)
}
