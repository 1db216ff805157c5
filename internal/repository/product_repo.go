package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/warungpo/preorder_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns products ordered by name. When activeOnly is true, inactive
// products are excluded.
func (r *ProductRepository) GetAll(activeOnly bool) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE ($1 = false OR is_active = true)
        ORDER BY name`

	var products []models.Product
	if err := r.db.Select(&products, q, activeOnly); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`

	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAddonProduct returns the active add-on product, or nil when none is
// configured. When several are flagged the oldest wins, which keeps the
// answer deterministic.
func (r *ProductRepository) GetAddonProduct() (*models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE is_addon = true AND is_active = true
        ORDER BY created_at
        LIMIT 1`

	var p models.Product
	if err := r.db.Get(&p, q); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	const q = `
        INSERT INTO products (id, name, description, price, image_url, is_addon, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.IsAddon,
		product.IsActive,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `
        UPDATE products
        SET name = $1, description = $2, price = $3, image_url = $4,
            is_addon = $5, is_active = $6, updated_at = NOW()
        WHERE id = $7
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.IsAddon,
		product.IsActive,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// Delete hard-deletes a product by ID. Variants are not cascaded; their
// removal is a separate explicit action.
func (r *ProductRepository) Delete(id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
