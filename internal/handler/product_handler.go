package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// ProductHandler serves the public catalog and the admin product CRUD.
type ProductHandler struct {
	catalogService *service.CatalogService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListPublic handles GET /api/products. Only active products are visible to
// the storefront.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Products retrieved", products)
}

// GetPublic handles GET /api/products/:id
func (h *ProductHandler) GetPublic(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !product.IsActive {
		respondError(c, utils.ErrProductNotFound)
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// Addons handles GET /api/addons. Returns the add-on product with its
// active variants, or null data when none is configured.
func (h *ProductHandler) Addons(c *gin.Context) {
	product, variants, err := h.catalogService.AddonProduct(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		utils.Success(c, 200, "No add-on product configured", nil)
		return
	}
	utils.Success(c, 200, "Add-ons retrieved", gin.H{
		"product":  product,
		"variants": variants,
	})
}

// ListAdmin handles GET /api/admin/products. Inactive products included.
func (h *ProductHandler) ListAdmin(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Products retrieved", products)
}

// Create handles POST /api/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Product created", product)
}

// Update handles PUT /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product updated", product)
}

// Delete handles DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product deleted", nil)
}
