package models

import "time"

// Product represents a sellable item in the catalog.
// Add-on products (is_addon = true) are not ordered on their own; their
// variants are offered as extra items attached to a regular order.
type Product struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	IsAddon     bool      `db:"is_addon" json:"is_addon"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProductVariant is a named option of a product carrying a fixed surcharge
// on top of the product's base price.
type ProductVariant struct {
	ID         string    `db:"id" json:"id"`
	ProductID  string    `db:"product_id" json:"product_id"`
	Name       string    `db:"name" json:"name"`
	ExtraPrice float64   `db:"extra_price" json:"extra_price"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
