package models

import "time"

// OrderStatus enumerates the order lifecycle states. Transitions are
// intentionally unconstrained: any status may be set at any time by an admin.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusWaitingPayment OrderStatus = "waiting_payment"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusWaitingPayment, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer pre-order. The total is never stored; it is derived
// from the items as SUM(quantity * unit_price) wherever it is needed.
type Order struct {
	ID               string      `db:"id" json:"id"`
	Code             string      `db:"code" json:"code"`
	CustomerName     string      `db:"customer_name" json:"customer_name"`
	CustomerWhatsapp string      `db:"customer_whatsapp" json:"customer_whatsapp"`
	CustomerEmail    *string     `db:"customer_email" json:"customer_email"`
	Status           OrderStatus `db:"status" json:"status"`
	Notes            *string     `db:"notes" json:"notes"`
	AdminNotes       *string     `db:"admin_notes" json:"admin_notes"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`

	// Derived in list queries (SUM over items), not a table column.
	Total float64 `db:"total" json:"total"`
}

// OrderItem is one line of an order. UnitPrice is a snapshot taken at order
// time and is immutable afterwards, so historical orders keep their pricing
// even when the product's current price changes.
type OrderItem struct {
	ID        string    `db:"id" json:"id"`
	OrderID   string    `db:"order_id" json:"order_id"`
	ProductID string    `db:"product_id" json:"product_id"`
	VariantID *string   `db:"variant_id" json:"variant_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	UnitPrice float64   `db:"unit_price" json:"unit_price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined for display (order detail views).
	ProductName string  `db:"product_name" json:"product_name,omitempty"`
	VariantName *string `db:"variant_name" json:"variant_name,omitempty"`
}

// OrderWithItems is an order together with its line items.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderStats holds per-status counters for the admin dashboard.
type OrderStats struct {
	Pending        int `db:"pending" json:"pending"`
	WaitingPayment int `db:"waiting_payment" json:"waiting_payment"`
	Confirmed      int `db:"confirmed" json:"confirmed"`
	Cancelled      int `db:"cancelled" json:"cancelled"`
	Total          int `db:"total" json:"total"`
}
