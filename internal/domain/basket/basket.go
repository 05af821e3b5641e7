// Package basket implements the shopping basket and its pricing pipeline:
// subtotal, offer discounts, delivery charge, rounded total.
package basket

import (
	"slices"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/acme-basket-challenge/internal/domain/delivery"
	"github.com/xenking/acme-basket-challenge/internal/domain/offer"
	"github.com/xenking/acme-basket-challenge/internal/domain/product"
)

// Basket accumulates products for a single shopping session. The catalog,
// delivery table, and offer list are shared immutable collaborators; the
// item list belongs to one basket and is mutated only by Add. A Basket is
// not safe for concurrent use.
type Basket struct {
	id       string
	catalog  product.Catalog
	delivery *delivery.Table
	offers   []offer.Offer
	items    []product.Product
}

// New creates an empty basket priced with the given collaborators.
func New(catalog product.Catalog, table *delivery.Table, offers []offer.Offer) *Basket {
	return &Basket{
		id:       uuid.New().String(),
		catalog:  catalog,
		delivery: table,
		offers:   slices.Clone(offers),
	}
}

// ID returns the basket's session identifier.
func (b *Basket) ID() string {
	return b.id
}

// Add looks up code in the catalog and appends the product to the basket.
// An unknown code fails with product.ErrNotFound wrapped with the code, and
// leaves the basket unchanged.
func (b *Basket) Add(code string) error {
	p, ok := b.catalog.Lookup(code)
	if !ok {
		return errors.Wrapf(product.ErrNotFound, "add %q", code)
	}
	b.items = append(b.items, p)
	return nil
}

// Items returns a copy of the basket contents in the order they were added.
func (b *Basket) Items() []product.Product {
	return slices.Clone(b.items)
}

// Subtotal returns the sum of item prices before any discount.
func (b *Basket) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range b.items {
		sum = sum.Add(item.Price)
	}
	return sum
}

// Total prices the current contents: subtotal, minus each offer's discount
// in configured order, plus the delivery charge for the discounted amount,
// rounded to 2 decimal places. Nothing is cached; every call reflects the
// current items.
func (b *Basket) Total() decimal.Decimal {
	return b.Receipt().Total
}

// DiscountLine is one applied offer on a receipt.
type DiscountLine struct {
	Description string
	Amount      decimal.Decimal
}

// Receipt is the full pricing breakdown for a basket at a point in time.
type Receipt struct {
	Items     []product.Product
	Subtotal  decimal.Decimal
	Discounts []DiscountLine
	Delivery  decimal.Decimal
	Total     decimal.Decimal
}

// Receipt computes the pricing breakdown from scratch. Offers that yield no
// discount are omitted from the discount lines but the total is identical
// to Total.
func (b *Basket) Receipt() Receipt {
	subtotal := b.Subtotal()

	discount := decimal.Zero
	var lines []DiscountLine
	for _, o := range b.offers {
		amount := o.Discount(b.items)
		discount = discount.Add(amount)
		if amount.IsPositive() {
			lines = append(lines, DiscountLine{
				Description: o.Description(),
				Amount:      amount,
			})
		}
	}

	// The discounted amount drives the delivery tier and is deliberately
	// not clamped at zero.
	afterOffers := subtotal.Sub(discount)
	deliveryCost := b.delivery.CostFor(afterOffers)

	return Receipt{
		Items:     b.Items(),
		Subtotal:  subtotal,
		Discounts: lines,
		Delivery:  deliveryCost,
		Total:     afterOffers.Add(deliveryCost).Round(2),
	}
}
