package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpo/preorder_api/internal/models"
)

func validOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		CustomerName:     "Budi Santoso",
		CustomerWhatsapp: "081234567890",
		ProductID:        "p1",
		Quantity:         2,
		AgreeTerms:       true,
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	svc := &OrderService{}
	assert.Nil(t, svc.validate(validOrderRequest(), 0))
}

func TestValidateRejectsBadFields(t *testing.T) {
	svc := &OrderService{}

	tests := []struct {
		name   string
		mutate func(*CreateOrderRequest)
		field  string
	}{
		{"short name", func(r *CreateOrderRequest) { r.CustomerName = "A" }, "customer_name"},
		{"long name", func(r *CreateOrderRequest) { r.CustomerName = strings.Repeat("a", 101) }, "customer_name"},
		{"short whatsapp", func(r *CreateOrderRequest) { r.CustomerWhatsapp = "081234567" }, "customer_whatsapp"},
		{"non numeric whatsapp", func(r *CreateOrderRequest) { r.CustomerWhatsapp = "+6281234567890" }, "customer_whatsapp"},
		{"bad email", func(r *CreateOrderRequest) { r.CustomerEmail = strPtr("not-an-email") }, "customer_email"},
		{"missing product", func(r *CreateOrderRequest) { r.ProductID = "" }, "product_id"},
		{"zero quantity", func(r *CreateOrderRequest) { r.Quantity = 0 }, "quantity"},
		{"excessive quantity", func(r *CreateOrderRequest) { r.Quantity = 101 }, "quantity"},
		{"long notes", func(r *CreateOrderRequest) { r.Notes = strPtr(strings.Repeat("x", 501)) }, "notes"},
		{"terms not agreed", func(r *CreateOrderRequest) { r.AgreeTerms = false }, "agree_terms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(req)
			fields := svc.validate(req, 0)
			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateCountsNameLengthInRunes(t *testing.T) {
	svc := &OrderService{}

	req := validOrderRequest()
	req.CustomerName = strings.Repeat("é", 100)
	assert.Nil(t, svc.validate(req, 0))

	req.CustomerName = strings.Repeat("é", 101)
	fields := svc.validate(req, 0)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "customer_name")
}

func TestValidateEnforcesConfiguredMaxQuantity(t *testing.T) {
	svc := &OrderService{}

	req := validOrderRequest()
	req.Quantity = 5
	fields := svc.validate(req, 3)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "quantity")

	req.Quantity = 3
	assert.Nil(t, svc.validate(req, 3))
}

func TestValidateAllowsOptionalFields(t *testing.T) {
	svc := &OrderService{}

	req := validOrderRequest()
	req.CustomerEmail = strPtr("")
	req.Notes = strPtr("tanpa sambal")
	assert.Nil(t, svc.validate(req, 0))
}

func TestNormalizeWhatsapp(t *testing.T) {
	assert.Equal(t, "6281234567890", normalizeWhatsapp("081234567890"))
	assert.Equal(t, "6281234567890", normalizeWhatsapp("+62 812-3456-7890"))
	assert.Equal(t, "6281234567890", normalizeWhatsapp("6281234567890"))
	assert.Equal(t, "", normalizeWhatsapp(""))
	assert.Equal(t, "", normalizeWhatsapp("abc"))
}

func TestBuildWhatsappURL(t *testing.T) {
	order := &models.Order{
		Code:         "PO-AB12CD34",
		CustomerName: "Budi Santoso",
		Notes:        strPtr("tanpa sambal"),
	}
	quote := Quote{
		Total: 119000,
		Items: []QuoteItem{
			{ProductName: "Nasi Ayam", VariantName: "Pedas", Quantity: 2, UnitPrice: 55000},
			{ProductName: "Topping", VariantName: "Telur", Quantity: 3, UnitPrice: 3000},
		},
	}

	raw := buildWhatsappURL("081234567890", order, quote)
	require.NotEmpty(t, raw)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/6281234567890", parsed.Path)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "*Kode Pesanan:* PO-AB12CD34")
	assert.Contains(t, text, "*Nama:* Budi Santoso")
	assert.Contains(t, text, "*Produk:* Nasi Ayam (Pedas)")
	assert.Contains(t, text, "Topping: Telur")
	assert.Contains(t, text, "*Jumlah:* 2")
	assert.Contains(t, text, "*Total:* Rp 119.000")
	assert.Contains(t, text, "*Catatan:* tanpa sambal")
	assert.Contains(t, text, "Mohon konfirmasi pesanan saya. Terima kasih!")
}

func TestBuildWhatsappURLWithoutAdminNumber(t *testing.T) {
	order := &models.Order{Code: "PO-AB12CD34", CustomerName: "Budi"}
	quote := Quote{Items: []QuoteItem{{ProductName: "Nasi Ayam", Quantity: 1}}}

	assert.Equal(t, "", buildWhatsappURL("", order, quote))
}

func TestBuildWhatsappURLOmitsEmptySections(t *testing.T) {
	order := &models.Order{Code: "PO-AB12CD34", CustomerName: "Budi"}
	quote := Quote{
		Total: 25000,
		Items: []QuoteItem{{ProductName: "Nasi Ayam", Quantity: 1, UnitPrice: 25000}},
	}

	raw := buildWhatsappURL("6281234567890", order, quote)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "*Produk:* Nasi Ayam\n")
	assert.NotContains(t, text, "Topping:")
	assert.NotContains(t, text, "*Catatan:*")
}
