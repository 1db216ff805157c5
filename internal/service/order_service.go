package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/warungpo/preorder_api/internal/cache"
	"github.com/warungpo/preorder_api/internal/models"
	"github.com/warungpo/preorder_api/internal/repository"
	"github.com/warungpo/preorder_api/internal/utils"
)

var whatsappPattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// ValidationErrors carries per-field messages for a rejected order request.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return "validation failed"
}

// OrderService handles the public submission flow and order tracking.
type OrderService struct {
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
	variantRepo *repository.VariantRepository
	settings    *SettingsService
	storeCache  *cache.StoreCache
}

// NewOrderService constructs an OrderService.
func NewOrderService(
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	variantRepo *repository.VariantRepository,
	settings *SettingsService,
	storeCache *cache.StoreCache,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		variantRepo: variantRepo,
		settings:    settings,
		storeCache:  storeCache,
	}
}

// CreateOrderRequest is the public order form payload. Toppings maps an
// add-on variant id to the quantity picked.
type CreateOrderRequest struct {
	CustomerName     string         `json:"customer_name"`
	CustomerWhatsapp string         `json:"customer_whatsapp"`
	CustomerEmail    *string        `json:"customer_email"`
	ProductID        string         `json:"product_id"`
	VariantID        *string        `json:"variant_id"`
	Quantity         int            `json:"quantity"`
	Toppings         map[string]int `json:"toppings"`
	Notes            *string        `json:"notes"`
	AgreeTerms       bool           `json:"agree_terms"`
}

// CreateOrderResult is what the storefront needs after a successful submit:
// the order code to track by and the WhatsApp handoff link.
type CreateOrderResult struct {
	Order       *models.OrderWithItems `json:"order"`
	Total       float64                `json:"total"`
	WhatsappURL string                 `json:"whatsapp_url"`
}

func (s *OrderService) validate(req *CreateOrderRequest, maxQty int) ValidationErrors {
	fields := ValidationErrors{}

	name := strings.TrimSpace(req.CustomerName)
	if utf8.RuneCountInString(name) < 2 {
		fields["customer_name"] = "nama minimal 2 karakter"
	} else if utf8.RuneCountInString(name) > 100 {
		fields["customer_name"] = "nama maksimal 100 karakter"
	}

	if !whatsappPattern.MatchString(req.CustomerWhatsapp) {
		fields["customer_whatsapp"] = "nomor WhatsApp harus 10-15 digit angka"
	}

	if req.CustomerEmail != nil && *req.CustomerEmail != "" {
		if _, err := mail.ParseAddress(*req.CustomerEmail); err != nil {
			fields["customer_email"] = "format email tidak valid"
		}
	}

	if req.ProductID == "" {
		fields["product_id"] = "produk wajib dipilih"
	}

	if req.Quantity < minQuantity || req.Quantity > maxQuantity {
		fields["quantity"] = fmt.Sprintf("jumlah harus antara %d dan %d", minQuantity, maxQuantity)
	} else if maxQty > 0 && req.Quantity > maxQty {
		fields["quantity"] = fmt.Sprintf("jumlah maksimal %d per pesanan", maxQty)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > 500 {
		fields["notes"] = "catatan maksimal 500 karakter"
	}

	if !req.AgreeTerms {
		fields["agree_terms"] = "syarat dan ketentuan harus disetujui"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Create validates and persists a new pre-order, then builds the WhatsApp
// confirmation link. Returns ValidationErrors for field problems and
// utils.ErrPreOrderClosed when the window is not open.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResult, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if !cfg.IsPreOrderOpen(time.Time{}) {
		return nil, utils.ErrPreOrderClosed
	}

	maxQty := 0
	if cfg.MaxOrderQuantity != "" {
		if n, convErr := strconv.Atoi(cfg.MaxOrderQuantity); convErr == nil {
			maxQty = n
		}
	}

	if fields := s.validate(req, maxQty); fields != nil {
		return nil, fields
	}

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, utils.ErrProductNotFound
	}

	var variant *models.ProductVariant
	if req.VariantID != nil && *req.VariantID != "" {
		variant, err = s.variantRepo.GetByID(*req.VariantID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, utils.ErrVariantNotFound
			}
			return nil, err
		}
		if variant.ProductID != product.ID || !variant.IsActive {
			return nil, utils.ErrVariantNotFound
		}
	}

	addonProduct, addonVariants, err := s.loadAddons(req.Toppings)
	if err != nil {
		return nil, err
	}

	quote := ComputeQuote(QuoteInput{
		Product:       product,
		Variant:       variant,
		Quantity:      req.Quantity,
		AddOnProduct:  addonProduct,
		AddOnVariants: addonVariants,
		AddOnQty:      req.Toppings,
	})

	code, err := utils.GenerateOrderCode()
	if err != nil {
		return nil, fmt.Errorf("generate order code: %w", err)
	}

	order := &models.Order{
		Code:             code,
		CustomerName:     strings.TrimSpace(req.CustomerName),
		CustomerWhatsapp: req.CustomerWhatsapp,
		CustomerEmail:    req.CustomerEmail,
		Status:           models.OrderStatusPending,
		Notes:            req.Notes,
	}

	items := make([]models.OrderItem, 0, len(quote.Items))
	for _, qi := range quote.Items {
		items = append(items, models.OrderItem{
			ProductID: qi.ProductID,
			VariantID: qi.VariantID,
			Quantity:  qi.Quantity,
			UnitPrice: qi.UnitPrice,
		})
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.storeCache != nil {
		s.storeCache.InvalidateOrders(ctx)
	}

	full, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("order_code", order.Code).
		Float64("total", quote.Total).
		Int("items", len(items)).
		Msg("Order created")

	return &CreateOrderResult{
		Order:       full,
		Total:       quote.Total,
		WhatsappURL: buildWhatsappURL(cfg.WhatsappAdmin, order, quote),
	}, nil
}

// loadAddons resolves the chosen topping variant ids against the configured
// add-on product. Unknown ids are dropped rather than rejected.
func (s *OrderService) loadAddons(toppings map[string]int) (*models.Product, []models.ProductVariant, error) {
	if len(toppings) == 0 {
		return nil, nil, nil
	}

	addonProduct, err := s.productRepo.GetAddonProduct()
	if err != nil {
		return nil, nil, err
	}
	if addonProduct == nil {
		return nil, nil, nil
	}

	variants, err := s.variantRepo.GetByProductID(addonProduct.ID, true)
	if err != nil {
		return nil, nil, err
	}
	return addonProduct, variants, nil
}

// TrackByCode returns an order with its items for the public tracking page.
func (s *OrderService) TrackByCode(ctx context.Context, code string) (*models.OrderWithItems, error) {
	order, err := s.orderRepo.GetByCode(strings.TrimSpace(code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// normalizeWhatsapp strips formatting from the admin number and converts a
// local 08xx prefix to the 62 country code wa.me expects.
func normalizeWhatsapp(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}

// buildWhatsappURL composes the wa.me handoff link with the order summary
// prefilled. Returns "" when no admin number is configured; submission never
// fails over the link.
func buildWhatsappURL(adminNumber string, order *models.Order, quote Quote) string {
	number := normalizeWhatsapp(adminNumber)
	if number == "" {
		return ""
	}

	var base QuoteItem
	var addons []string
	for i, item := range quote.Items {
		if i == 0 {
			base = item
			continue
		}
		addons = append(addons, item.VariantName)
	}

	productLine := base.ProductName
	if base.VariantName != "" {
		productLine = fmt.Sprintf("%s (%s)", base.ProductName, base.VariantName)
	}

	var msg strings.Builder
	msg.WriteString("Halo, saya ingin melakukan Pre-Order:\n\n")
	fmt.Fprintf(&msg, "*Kode Pesanan:* %s\n", order.Code)
	fmt.Fprintf(&msg, "*Nama:* %s\n", order.CustomerName)
	fmt.Fprintf(&msg, "*Produk:* %s\n", productLine)
	if len(addons) > 0 {
		fmt.Fprintf(&msg, "Topping: %s\n", strings.Join(addons, ", "))
	}
	fmt.Fprintf(&msg, "*Jumlah:* %d\n", base.Quantity)
	fmt.Fprintf(&msg, "*Total:* %s\n", utils.FormatIDR(quote.Total))
	if order.Notes != nil && *order.Notes != "" {
		fmt.Fprintf(&msg, "*Catatan:* %s\n", *order.Notes)
	}
	msg.WriteString("\nMohon konfirmasi pesanan saya. Terima kasih!")

	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(msg.String()))
}
