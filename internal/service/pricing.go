package service

import (
	"math"

	"github.com/warungpo/preorder_api/internal/models"
)

// Pricing for a pre-order. All computation here is pure: callers re-run it
// whenever an input changes and persist the resulting snapshot prices.

// minQuantity/maxQuantity bound the base item quantity.
const (
	minQuantity = 1
	maxQuantity = 100
)

// safeAmount coerces non-finite amounts to 0 so a bad upstream value can
// never surface NaN in a customer-facing total.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clampQuantity forces q into [minQuantity, maxQuantity].
func clampQuantity(q int) int {
	if q < minQuantity {
		return minQuantity
	}
	if q > maxQuantity {
		return maxQuantity
	}
	return q
}

// QuoteInput are the selections a quote is computed from. AddOnQty maps an
// add-on variant id to its quantity; zero and negative entries are treated
// as absent.
type QuoteInput struct {
	Product       *models.Product
	Variant       *models.ProductVariant
	Quantity      int
	AddOnProduct  *models.Product
	AddOnVariants []models.ProductVariant
	AddOnQty      map[string]int
}

// QuoteItem is one order line produced by a quote: the base product+variant
// first, then one line per selected add-on. UnitPrice is the snapshot that
// gets persisted on the order item.
type QuoteItem struct {
	ProductID   string
	VariantID   *string
	Quantity    int
	UnitPrice   float64
	ProductName string
	VariantName string
}

// Quote is the priced result of a selection.
type Quote struct {
	BaseUnitPrice float64
	AddOnsTotal   float64
	Total         float64
	Items         []QuoteItem
}

// ComputeQuote prices a selection. The total is
// (price + variant extra) * quantity + sum of add-on unit prices times their
// quantities, where an add-on unit price is the add-on product's base price
// plus the chosen variant's extra.
func ComputeQuote(in QuoteInput) Quote {
	var quote Quote
	if in.Product == nil {
		return quote
	}

	basePrice := safeAmount(in.Product.Price)
	variantExtra := 0.0
	var variantID *string
	variantName := ""
	if in.Variant != nil {
		variantExtra = safeAmount(in.Variant.ExtraPrice)
		id := in.Variant.ID
		variantID = &id
		variantName = in.Variant.Name
	}

	quantity := clampQuantity(in.Quantity)
	quote.BaseUnitPrice = basePrice + variantExtra

	quote.Items = append(quote.Items, QuoteItem{
		ProductID:   in.Product.ID,
		VariantID:   variantID,
		Quantity:    quantity,
		UnitPrice:   quote.BaseUnitPrice,
		ProductName: in.Product.Name,
		VariantName: variantName,
	})

	if in.AddOnProduct != nil {
		addOnBase := safeAmount(in.AddOnProduct.Price)
		for _, av := range in.AddOnVariants {
			qty := in.AddOnQty[av.ID]
			if qty <= 0 {
				continue
			}
			unit := addOnBase + safeAmount(av.ExtraPrice)
			quote.AddOnsTotal += unit * float64(qty)

			id := av.ID
			quote.Items = append(quote.Items, QuoteItem{
				ProductID:   in.AddOnProduct.ID,
				VariantID:   &id,
				Quantity:    qty,
				UnitPrice:   unit,
				ProductName: in.AddOnProduct.Name,
				VariantName: av.Name,
			})
		}
	}

	quote.Total = quote.BaseUnitPrice*float64(quantity) + quote.AddOnsTotal
	return quote
}
