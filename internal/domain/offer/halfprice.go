package offer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xenking/acme-basket-challenge/internal/domain/product"
)

var two = decimal.NewFromInt(2)

// HalfPricePair discounts every second unit of a target product by half:
// "buy one, get the second half price".
type HalfPricePair struct {
	code string
}

var _ Offer = (*HalfPricePair)(nil)

// NewHalfPricePair creates the offer for the given product code.
func NewHalfPricePair(code string) *HalfPricePair {
	return &HalfPricePair{code: code}
}

// Discount counts occurrences of the target code and returns half the unit
// price for each complete pair, rounded once to 2 decimal places
// (decimal.Round, half away from zero). Fewer than two occurrences yield
// zero. All units of a product share one price, so the price is taken from
// any matching item.
func (o *HalfPricePair) Discount(items []product.Product) decimal.Decimal {
	count := 0
	unitPrice := decimal.Zero
	for _, item := range items {
		if item.Code == o.code {
			count++
			unitPrice = item.Price
		}
	}

	pairs := count / 2
	if pairs == 0 {
		return decimal.Zero
	}

	return unitPrice.Div(two).Mul(decimal.NewFromInt(int64(pairs))).Round(2)
}

// Description returns a display string for receipts.
func (o *HalfPricePair) Description() string {
	return fmt.Sprintf("buy one %s, get the second half price", o.code)
}
