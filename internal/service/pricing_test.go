package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungpo/preorder_api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestComputeQuoteWithVariantAndAddons(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Nasi Ayam", Price: 50000}
	variant := &models.ProductVariant{ID: "v1", ProductID: "p1", Name: "Pedas", ExtraPrice: 5000}
	addon := &models.Product{ID: "a1", Name: "Topping", Price: 2000, IsAddon: true}
	addonVariants := []models.ProductVariant{
		{ID: "av1", ProductID: "a1", Name: "Telur", ExtraPrice: 1000},
		{ID: "av2", ProductID: "a1", Name: "Kerupuk", ExtraPrice: 0},
	}

	quote := ComputeQuote(QuoteInput{
		Product:       product,
		Variant:       variant,
		Quantity:      2,
		AddOnProduct:  addon,
		AddOnVariants: addonVariants,
		AddOnQty:      map[string]int{"av1": 3},
	})

	assert.Equal(t, 55000.0, quote.BaseUnitPrice)
	assert.Equal(t, 9000.0, quote.AddOnsTotal)
	assert.Equal(t, 119000.0, quote.Total)

	require.Len(t, quote.Items, 2)
	assert.Equal(t, "p1", quote.Items[0].ProductID)
	assert.Equal(t, 2, quote.Items[0].Quantity)
	assert.Equal(t, 55000.0, quote.Items[0].UnitPrice)
	assert.Equal(t, "Pedas", quote.Items[0].VariantName)

	assert.Equal(t, "a1", quote.Items[1].ProductID)
	require.NotNil(t, quote.Items[1].VariantID)
	assert.Equal(t, "av1", *quote.Items[1].VariantID)
	assert.Equal(t, 3, quote.Items[1].Quantity)
	assert.Equal(t, 3000.0, quote.Items[1].UnitPrice)
}

func TestComputeQuoteWithoutVariant(t *testing.T) {
	quote := ComputeQuote(QuoteInput{
		Product:  &models.Product{ID: "p1", Name: "Nasi Ayam", Price: 25000},
		Quantity: 1,
	})

	assert.Equal(t, 25000.0, quote.Total)
	require.Len(t, quote.Items, 1)
	assert.Nil(t, quote.Items[0].VariantID)
	assert.Equal(t, "", quote.Items[0].VariantName)
}

func TestComputeQuoteSkipsZeroQuantityAddons(t *testing.T) {
	quote := ComputeQuote(QuoteInput{
		Product:      &models.Product{ID: "p1", Name: "Nasi Ayam", Price: 10000},
		Quantity:     1,
		AddOnProduct: &models.Product{ID: "a1", Name: "Topping", Price: 2000},
		AddOnVariants: []models.ProductVariant{
			{ID: "av1", Name: "Telur", ExtraPrice: 1000},
			{ID: "av2", Name: "Kerupuk", ExtraPrice: 500},
		},
		AddOnQty: map[string]int{"av1": 0, "av2": -2},
	})

	assert.Equal(t, 0.0, quote.AddOnsTotal)
	assert.Len(t, quote.Items, 1)
	assert.Equal(t, 10000.0, quote.Total)
}

func TestComputeQuoteClampsQuantity(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Nasi Ayam", Price: 1000}

	low := ComputeQuote(QuoteInput{Product: product, Quantity: 0})
	assert.Equal(t, 1, low.Items[0].Quantity)
	assert.Equal(t, 1000.0, low.Total)

	high := ComputeQuote(QuoteInput{Product: product, Quantity: 1000})
	assert.Equal(t, 100, high.Items[0].Quantity)
	assert.Equal(t, 100000.0, high.Total)
}

func TestComputeQuoteCoercesNonFinitePrices(t *testing.T) {
	quote := ComputeQuote(QuoteInput{
		Product:  &models.Product{ID: "p1", Name: "Nasi Ayam", Price: math.NaN()},
		Variant:  &models.ProductVariant{ID: "v1", Name: "Pedas", ExtraPrice: math.Inf(1)},
		Quantity: 3,
	})

	assert.Equal(t, 0.0, quote.BaseUnitPrice)
	assert.Equal(t, 0.0, quote.Total)
}

func TestComputeQuoteNilProduct(t *testing.T) {
	quote := ComputeQuote(QuoteInput{Quantity: 2})
	assert.Empty(t, quote.Items)
	assert.Equal(t, 0.0, quote.Total)
}
