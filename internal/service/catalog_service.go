package service

import (
	"context"
	"database/sql"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/utils"
)

// CatalogService handles product and variant reads and admin CRUD.
type CatalogService struct {
	productRepo *repository.ProductRepository
	variantRepo *repository.VariantRepository
	storeCache  *cache.StoreCache
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(productRepo *repository.ProductRepository, variantRepo *repository.VariantRepository, storeCache *cache.StoreCache) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		variantRepo: variantRepo,
		storeCache:  storeCache,
	}
}

// ListProducts returns the catalog, optionally restricted to active products.
func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	if s.storeCache != nil {
		var cached []models.Product
		if s.storeCache.GetProducts(ctx, activeOnly, &cached) {
			return cached, nil
		}
	}

	products, err := s.productRepo.GetAll(activeOnly)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	if s.storeCache != nil {
		s.storeCache.SetProducts(ctx, activeOnly, products)
	}
	return products, nil
}

// GetProduct retrieves a product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if s.storeCache != nil {
		var cached models.Product
		if s.storeCache.GetProduct(ctx, id, &cached) {
			return &cached, nil
		}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.SetProduct(ctx, id, product)
	}
	return product, nil
}

// ListVariants returns the variants of a product. A deleted or unknown
// product yields an empty list, not an error: variants are removed by their
// own explicit delete, never by a product delete.
func (s *CatalogService) ListVariants(ctx context.Context, productID string, activeOnly bool) ([]models.ProductVariant, error) {
	if s.storeCache != nil {
		var cached []models.ProductVariant
		if s.storeCache.GetVariants(ctx, productID, activeOnly, &cached) {
			return cached, nil
		}
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		if err == sql.ErrNoRows {
			return []models.ProductVariant{}, nil
		}
		return nil, err
	}

	variants, err := s.variantRepo.GetByProductID(productID, activeOnly)
	if err != nil {
		return nil, err
	}
	if variants == nil {
		variants = []models.ProductVariant{}
	}
	if s.storeCache != nil {
		s.storeCache.SetVariants(ctx, productID, activeOnly, variants)
	}
	return variants, nil
}

// CreateProductRequest represents the request to create a new product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	IsAddon     bool    `json:"is_addon"`
	IsActive    bool    `json:"is_active"`
}

// UpdateProductRequest represents a partial product update. Nil fields are
// left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	IsAddon     *bool    `json:"is_addon"`
	IsActive    *bool    `json:"is_active"`
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if req.Price < 0 {
		return nil, ValidationErrors{"price": "price must not be negative"}
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAddon:     req.IsAddon,
		IsActive:    req.IsActive,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateProduct(ctx, product.ID)
	}
	return product, nil
}

// UpdateProduct applies a partial update to a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ValidationErrors{"price": "price must not be negative"}
		}
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.IsAddon != nil {
		product.IsAddon = *req.IsAddon
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateProduct(ctx, product.ID)
	}
	return product, nil
}

// DeleteProduct hard-deletes a product. Its variants stay until deleted
// explicitly.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return utils.ErrProductNotFound
		}
		return err
	}
	if err := s.productRepo.Delete(product.ID); err != nil {
		return err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateProduct(ctx, product.ID)
	}
	return nil
}

// CreateVariantRequest represents the request to create a variant.
type CreateVariantRequest struct {
	ProductID  string  `json:"product_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	ExtraPrice float64 `json:"extra_price"`
	IsActive   bool    `json:"is_active"`
}

// UpdateVariantRequest represents a partial variant update.
type UpdateVariantRequest struct {
	Name       *string  `json:"name"`
	ExtraPrice *float64 `json:"extra_price"`
	IsActive   *bool    `json:"is_active"`
}

// CreateVariant creates a variant under an existing product.
func (s *CatalogService) CreateVariant(ctx context.Context, req *CreateVariantRequest) (*models.ProductVariant, error) {
	if req.ExtraPrice < 0 {
		return nil, ValidationErrors{"extra_price": "extra_price must not be negative"}
	}
	if _, err := s.productRepo.GetByID(req.ProductID); err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	variant := &models.ProductVariant{
		ProductID:  req.ProductID,
		Name:       req.Name,
		ExtraPrice: req.ExtraPrice,
		IsActive:   req.IsActive,
	}

	if err := s.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateVariants(ctx, variant.ProductID)
	}
	return variant, nil
}

// UpdateVariant applies a partial update to a variant.
func (s *CatalogService) UpdateVariant(ctx context.Context, id string, req *UpdateVariantRequest) (*models.ProductVariant, error) {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrVariantNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		variant.Name = *req.Name
	}
	if req.ExtraPrice != nil {
		if *req.ExtraPrice < 0 {
			return nil, ValidationErrors{"extra_price": "extra_price must not be negative"}
		}
		variant.ExtraPrice = *req.ExtraPrice
	}
	if req.IsActive != nil {
		variant.IsActive = *req.IsActive
	}

	if err := s.variantRepo.Update(variant); err != nil {
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateVariants(ctx, variant.ProductID)
	}
	return variant, nil
}

// DeleteVariant hard-deletes a variant.
func (s *CatalogService) DeleteVariant(ctx context.Context, id string) error {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return utils.ErrVariantNotFound
		}
		return err
	}
	if err := s.variantRepo.Delete(variant.ID); err != nil {
		return err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateVariants(ctx, variant.ProductID)
	}
	return nil
}

// AddonProduct returns the active add-on product with its active variants,
// or nil when none is configured. The order form offers these variants as
// optional extras.
func (s *CatalogService) AddonProduct(ctx context.Context) (*models.Product, []models.ProductVariant, error) {
	product, err := s.productRepo.GetAddonProduct()
	if err != nil || product == nil {
		return nil, nil, err
	}
	variants, err := s.variantRepo.GetByProductID(product.ID, true)
	if err != nil {
		return nil, nil, err
	}
	return product, variants, nil
}
