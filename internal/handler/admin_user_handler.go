package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// AdminUserHandler serves super-admin account management.
type AdminUserHandler struct {
	adminUserService *service.AdminUserService
}

// NewAdminUserHandler constructs an AdminUserHandler.
func NewAdminUserHandler(adminUserService *service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{adminUserService: adminUserService}
}

// List handles GET /api/admin/users
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.adminUserService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Admin users retrieved", users)
}

// Create handles POST /api/admin/users
func (h *AdminUserHandler) Create(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.adminUserService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Admin user created", user)
}

// SetActive handles PATCH /api/admin/users/:id/active
func (h *AdminUserHandler) SetActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid user id")
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	if id == c.GetInt("user_id") && !*req.IsActive {
		utils.Error(c, 400, "INVALID_REQUEST", "Cannot deactivate your own account")
		return
	}

	user, err := h.adminUserService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Admin user updated", user)
}
