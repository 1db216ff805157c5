package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// ReportRepository aggregates order data for the reporting endpoints. The
// client only renders and exports what these queries return.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ReportSummary is the headline block of the sales report.
type ReportSummary struct {
	TotalOrders  int     `db:"total_orders" json:"total_orders"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
	ItemsSold    int     `db:"items_sold" json:"items_sold"`
}

// VariantPerformance is one row of the per-variant breakdown.
type VariantPerformance struct {
	ProductName string  `db:"product_name" json:"product_name"`
	VariantName *string `db:"variant_name" json:"variant_name"`
	QtySold     int     `db:"qty_sold" json:"qty_sold"`
}

// dateWhere builds the shared filter: cancelled orders never count as sales,
// and the created-date range is inclusive on both ends.
func dateWhere(start, end *time.Time, argIdx int) (string, []interface{}, int) {
	where := []string{"o.status != 'cancelled'"}
	args := []interface{}{}

	if start != nil {
		where = append(where, fmt.Sprintf("o.created_at >= $%d", argIdx))
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		where = append(where, fmt.Sprintf("o.created_at < $%d", argIdx))
		args = append(args, end.AddDate(0, 0, 1))
		argIdx++
	}
	return strings.Join(where, " AND "), args, argIdx
}

// Summary returns totals for the date range. A range matching no orders
// yields zeros, never an error.
func (r *ReportRepository) Summary(start, end *time.Time) (*ReportSummary, error) {
	where, args, _ := dateWhere(start, end, 1)

	q := `
        SELECT
            COUNT(DISTINCT o.id)                               AS total_orders,
            COALESCE(SUM(oi.quantity * oi.unit_price), 0)      AS total_revenue,
            COALESCE(SUM(oi.quantity), 0)                      AS items_sold
        FROM orders o
        LEFT JOIN order_items oi ON oi.order_id = o.id
        WHERE ` + where

	var summary ReportSummary
	if err := r.db.Get(&summary, q, args...); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ByVariant returns quantity sold per product/variant pair, best sellers
// first. Items without a variant report a NULL variant_name.
func (r *ReportRepository) ByVariant(start, end *time.Time) ([]VariantPerformance, error) {
	where, args, _ := dateWhere(start, end, 1)

	q := `
        SELECT
            COALESCE(p.name, '-') AS product_name,
            v.name                AS variant_name,
            SUM(oi.quantity)      AS qty_sold
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        LEFT JOIN products p ON p.id = oi.product_id
        LEFT JOIN product_variants v ON v.id = oi.variant_id
        WHERE ` + where + `
        GROUP BY p.name, v.name
        ORDER BY qty_sold DESC, product_name`

	var rows []VariantPerformance
	if err := r.db.Select(&rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
