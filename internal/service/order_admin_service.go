package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/utils"
)

// OrderAdminService handles the dashboard side of orders: listing, stats,
// status changes and deletion.
type OrderAdminService struct {
	orderRepo  *repository.OrderRepository
	storeCache *cache.StoreCache
}

// NewOrderAdminService constructs an OrderAdminService.
func NewOrderAdminService(orderRepo *repository.OrderRepository, storeCache *cache.StoreCache) *OrderAdminService {
	return &OrderAdminService{
		orderRepo:  orderRepo,
		storeCache: storeCache,
	}
}

// ListOrdersQuery are the dashboard filter values, all optional. Dates use
// YYYY-MM-DD and the range is inclusive on both ends.
type ListOrdersQuery struct {
	Status    string
	ProductID string
	VariantID string
	StartDate string
	EndDate   string
}

func parseFilterDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &t, nil
}

// List returns orders matching the query, newest first.
func (s *OrderAdminService) List(ctx context.Context, q *ListOrdersQuery) ([]models.Order, error) {
	filter := &repository.OrderFilter{}

	if q.Status != "" {
		if !models.ValidOrderStatus(q.Status) {
			return nil, ValidationErrors{"status": fmt.Sprintf("invalid status %q", q.Status)}
		}
		st := q.Status
		filter.Status = &st
	}
	if q.ProductID != "" {
		pid := q.ProductID
		filter.ProductID = &pid
	}
	if q.VariantID != "" {
		vid := q.VariantID
		filter.VariantID = &vid
	}

	var err error
	if filter.StartDate, err = parseFilterDate(q.StartDate); err != nil {
		return nil, ValidationErrors{"start_date": err.Error()}
	}
	if filter.EndDate, err = parseFilterDate(q.EndDate); err != nil {
		return nil, ValidationErrors{"end_date": err.Error()}
	}

	orders, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Stats returns the per-status order counts for the dashboard header.
func (s *OrderAdminService) Stats(ctx context.Context) (*models.OrderStats, error) {
	if s.storeCache != nil {
		var cached models.OrderStats
		if s.storeCache.GetOrderStats(ctx, &cached) {
			return &cached, nil
		}
	}

	stats, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	if s.storeCache != nil {
		s.storeCache.SetOrderStats(ctx, stats)
	}
	return stats, nil
}

// Get returns one order with its items.
func (s *OrderAdminService) Get(ctx context.Context, id string) (*models.OrderWithItems, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrderRequest is a partial admin update. Nil fields are untouched.
type UpdateOrderRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

// Update changes an order's status and/or admin notes. Any status may move
// to any other status.
func (s *OrderAdminService) Update(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, error) {
	if req.Status == nil && req.AdminNotes == nil {
		return nil, ValidationErrors{"status": "nothing to update"}
	}

	upd := &repository.OrderUpdate{AdminNotes: req.AdminNotes}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !models.ValidOrderStatus(status) {
			return nil, ValidationErrors{"status": fmt.Sprintf("invalid status %q", *req.Status)}
		}
		upd.Status = &status
	}

	order, err := s.orderRepo.Update(id, upd)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}

	if s.storeCache != nil {
		s.storeCache.InvalidateOrders(ctx)
	}

	log.Info().
		Str("order_id", id).
		Str("status", string(order.Status)).
		Msg("Order updated")

	return order, nil
}

// Delete removes an order and its items.
func (s *OrderAdminService) Delete(ctx context.Context, id string) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		if err == sql.ErrNoRows {
			return utils.ErrOrderNotFound
		}
		return err
	}
	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}
	if s.storeCache != nil {
		s.storeCache.InvalidateOrders(ctx)
	}
	return nil
}
