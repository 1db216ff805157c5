package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/warungpo/preorder_api/internal/models"
)

// OrderRepository handles data access for orders and their items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderFilter holds optional filters for order list queries. All set filters
// combine with AND semantics. The date range is inclusive: EndDate covers
// the whole end day.
type OrderFilter struct {
	Status    *string
	ProductID *string
	VariantID *string
	StartDate *time.Time
	EndDate   *time.Time
}

// selectWithTotal derives each order's total from its items; a stored total
// column could drift, so none exists.
const selectWithTotal = `
    SELECT o.*, COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total
    FROM orders o
    LEFT JOIN order_items oi ON oi.order_id = o.id`

// List returns orders matching the filter, newest first, each with a derived
// total.
func (r *OrderRepository) List(filter *OrderFilter) ([]models.Order, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter != nil {
		if filter.Status != nil {
			where = append(where, fmt.Sprintf("o.status = $%d", argIdx))
			args = append(args, *filter.Status)
			argIdx++
		}
		if filter.ProductID != nil {
			where = append(where, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM order_items f WHERE f.order_id = o.id AND f.product_id = $%d)", argIdx))
			args = append(args, *filter.ProductID)
			argIdx++
		}
		if filter.VariantID != nil {
			where = append(where, fmt.Sprintf(
				"EXISTS (SELECT 1 FROM order_items f WHERE f.order_id = o.id AND f.variant_id = $%d)", argIdx))
			args = append(args, *filter.VariantID)
			argIdx++
		}
		if filter.StartDate != nil {
			where = append(where, fmt.Sprintf("o.created_at >= $%d", argIdx))
			args = append(args, *filter.StartDate)
			argIdx++
		}
		if filter.EndDate != nil {
			// Inclusive: anything created before the start of the next day.
			where = append(where, fmt.Sprintf("o.created_at < $%d", argIdx))
			args = append(args, filter.EndDate.AddDate(0, 0, 1))
			argIdx++
		}
	}

	q := selectWithTotal + `
    WHERE ` + strings.Join(where, " AND ") + `
    GROUP BY o.id
    ORDER BY o.created_at DESC`

	var orders []models.Order
	if err := r.db.Select(&orders, q, args...); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns a single order with its items.
func (r *OrderRepository) GetByID(id string) (*models.OrderWithItems, error) {
	var order models.Order
	if err := r.db.Get(&order, selectWithTotal+` WHERE o.id = $1 GROUP BY o.id`, id); err != nil {
		return nil, err
	}

	items, err := r.getItems(order.ID)
	if err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: order, Items: items}, nil
}

// GetByCode returns a single order by its public code, without items. Used
// by the customer-facing tracking page.
func (r *OrderRepository) GetByCode(code string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Get(&order, selectWithTotal+` WHERE o.code = $1 GROUP BY o.id`, code); err != nil {
		return nil, err
	}
	return &order, nil
}

// getItems loads the items of an order with product/variant names joined.
// Product joins are LEFT so items survive a later product hard delete.
func (r *OrderRepository) getItems(orderID string) ([]models.OrderItem, error) {
	const q = `
        SELECT oi.*, COALESCE(p.name, '-') AS product_name, v.name AS variant_name
        FROM order_items oi
        LEFT JOIN products p ON p.id = oi.product_id
        LEFT JOIN product_variants v ON v.id = oi.variant_id
        WHERE oi.order_id = $1
        ORDER BY oi.created_at, oi.id`

	var items []models.OrderItem
	if err := r.db.Select(&items, q, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateWithItems inserts an order and all of its items in one transaction,
// so a failed item insert never leaves a partial order behind.
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertOrder = `
        INSERT INTO orders (id, code, customer_name, customer_whatsapp, customer_email, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	err = tx.QueryRowx(insertOrder,
		order.ID,
		order.Code,
		order.CustomerName,
		order.CustomerWhatsapp,
		order.CustomerEmail,
		order.Status,
		order.Notes,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO order_items (id, order_id, product_id, variant_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].OrderID = order.ID
		err = tx.QueryRowx(insertItem,
			items[i].ID,
			items[i].OrderID,
			items[i].ProductID,
			items[i].VariantID,
			items[i].Quantity,
			items[i].UnitPrice,
		).Scan(&items[i].CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// OrderUpdate holds the admin-mutable order fields. Nil fields are left
// untouched; status and admin_notes update independently.
type OrderUpdate struct {
	Status     *string
	AdminNotes *string
}

// buildOrderUpdateSet renders the SET clause for a partial update. Only
// fields present on upd appear in the clause, so a status-only update
// cannot touch admin_notes and vice versa.
func buildOrderUpdateSet(upd *OrderUpdate) (string, []interface{}) {
	set := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if upd.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *upd.Status)
		argIdx++
	}
	if upd.AdminNotes != nil {
		set = append(set, fmt.Sprintf("admin_notes = $%d", argIdx))
		args = append(args, *upd.AdminNotes)
		argIdx++
	}

	return strings.Join(set, ", "), args
}

// Update applies a partial update and returns the refreshed order.
func (r *OrderRepository) Update(id string, upd *OrderUpdate) (*models.Order, error) {
	setClause, args := buildOrderUpdateSet(upd)
	q := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $%d`, setClause, len(args)+1)
	args = append(args, id)

	if _, err := r.db.Exec(q, args...); err != nil {
		return nil, err
	}

	var order models.Order
	if err := r.db.Get(&order, selectWithTotal+` WHERE o.id = $1 GROUP BY o.id`, id); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete hard-deletes an order; its items cascade.
func (r *OrderRepository) Delete(id string) error {
	const q = `DELETE FROM orders WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}

// CountByStatus returns per-status counters for the dashboard.
func (r *OrderRepository) CountByStatus() (*models.OrderStats, error) {
	const q = `
        SELECT
            COUNT(*) FILTER (WHERE status = 'pending')         AS pending,
            COUNT(*) FILTER (WHERE status = 'waiting_payment') AS waiting_payment,
            COUNT(*) FILTER (WHERE status = 'confirmed')       AS confirmed,
            COUNT(*) FILTER (WHERE status = 'cancelled')       AS cancelled,
            COUNT(*)                                           AS total
        FROM orders`

	var stats models.OrderStats
	if err := r.db.Get(&stats, q); err != nil {
		return nil, err
	}
	return &stats, nil
}
