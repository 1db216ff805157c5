package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/warungpo/preorder_api/internal/models"
)

// VariantRepository handles data access for product variants.
type VariantRepository struct {
	db *sqlx.DB
}

// NewVariantRepository creates a new VariantRepository.
func NewVariantRepository(db *sqlx.DB) *VariantRepository {
	return &VariantRepository{db: db}
}

// GetByProductID returns the variants of a product ordered by name. When
// activeOnly is true, inactive variants are excluded.
func (r *VariantRepository) GetByProductID(productID string, activeOnly bool) ([]models.ProductVariant, error) {
	const q = `
        SELECT * FROM product_variants
        WHERE product_id = $1
        AND ($2 = false OR is_active = true)
        ORDER BY name`

	var variants []models.ProductVariant
	if err := r.db.Select(&variants, q, productID, activeOnly); err != nil {
		return nil, err
	}
	return variants, nil
}

// GetByID returns a single variant by id.
func (r *VariantRepository) GetByID(id string) (*models.ProductVariant, error) {
	const q = `SELECT * FROM product_variants WHERE id = $1 LIMIT 1`

	var v models.ProductVariant
	if err := r.db.Get(&v, q, id); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new variant.
func (r *VariantRepository) Create(variant *models.ProductVariant) error {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	const q = `
        INSERT INTO product_variants (id, product_id, name, extra_price, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.db.QueryRowx(q,
		variant.ID,
		variant.ProductID,
		variant.Name,
		variant.ExtraPrice,
		variant.IsActive,
	).Scan(&variant.CreatedAt)
}

// Update updates an existing variant.
func (r *VariantRepository) Update(variant *models.ProductVariant) error {
	const q = `
        UPDATE product_variants
        SET name = $1, extra_price = $2, is_active = $3
        WHERE id = $4`

	_, err := r.db.Exec(q, variant.Name, variant.ExtraPrice, variant.IsActive, variant.ID)
	return err
}

// Delete hard-deletes a variant by ID.
func (r *VariantRepository) Delete(id string) error {
	const q = `DELETE FROM product_variants WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
