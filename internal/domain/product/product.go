package product

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase. Products are
// value types: once handed out they are never modified.
type Product struct {
	Code  string
	Name  string
	Price decimal.Decimal
}

// Catalog defines read access to the product range.
type Catalog interface {
	Lookup(code string) (Product, bool)
}

// Registry is an immutable in-memory Catalog built once from a fixed
// product list. It is safe to share across baskets.
type Registry struct {
	byCode map[string]Product
}

var _ Catalog = (*Registry)(nil)

// NewRegistry builds a Registry from the given products. Duplicate codes,
// empty codes, and negative prices are configuration errors and fail
// construction.
func NewRegistry(products []Product) (*Registry, error) {
	byCode := make(map[string]Product, len(products))
	for _, p := range products {
		if p.Code == "" {
			return nil, errors.Errorf("product %q: code must not be empty", p.Name)
		}
		if p.Price.IsNegative() {
			return nil, errors.Errorf("product %s: price must not be negative", p.Code)
		}
		if _, ok := byCode[p.Code]; ok {
			return nil, errors.Errorf("duplicate product code %s", p.Code)
		}
		byCode[p.Code] = p
	}
	return &Registry{byCode: byCode}, nil
}

// Lookup returns the product registered under code, or false when the code
// is unknown.
func (r *Registry) Lookup(code string) (Product, bool) {
	p, ok := r.byCode[code]
	return p, ok
}

// Len reports the number of registered products.
func (r *Registry) Len() int {
	return len(r.byCode)
}
