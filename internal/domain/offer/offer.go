// Package offer holds the pluggable discount rules applied to basket
// contents during pricing.
package offer

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/acme-basket-challenge/internal/domain/product"
)

// Offer computes a monetary discount for a sequence of basket items.
//
// Implementations must be pure: the item slice is never mutated, the result
// is non-negative, in the same currency unit as the item prices, and zero
// when the offer does not apply.
type Offer interface {
	Discount(items []product.Product) decimal.Decimal
	Description() string
}
