package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// VariantHandler serves product variant endpoints.
type VariantHandler struct {
	catalogService *service.CatalogService
}

// NewVariantHandler constructs a VariantHandler.
func NewVariantHandler(catalogService *service.CatalogService) *VariantHandler {
	return &VariantHandler{catalogService: catalogService}
}

// ListPublic handles GET /api/products/:id/variants. Active variants only;
// an unknown product yields an empty list.
func (h *VariantHandler) ListPublic(c *gin.Context) {
	variants, err := h.catalogService.ListVariants(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Variants retrieved", variants)
}

// ListAdmin handles GET /api/admin/products/:id/variants
func (h *VariantHandler) ListAdmin(c *gin.Context) {
	variants, err := h.catalogService.ListVariants(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Variants retrieved", variants)
}

// Create handles POST /api/admin/variants
func (h *VariantHandler) Create(c *gin.Context) {
	var req service.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	variant, err := h.catalogService.CreateVariant(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Variant created", variant)
}

// Update handles PUT /api/admin/variants/:id
func (h *VariantHandler) Update(c *gin.Context) {
	var req service.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	variant, err := h.catalogService.UpdateVariant(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Variant updated", variant)
}

// Delete handles DELETE /api/admin/variants/:id
func (h *VariantHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteVariant(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Variant deleted", nil)
}
