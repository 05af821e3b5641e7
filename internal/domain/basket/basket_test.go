package basket

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/acme-basket-challenge/internal/domain/delivery"
	"github.com/xenking/acme-basket-challenge/internal/domain/offer"
	"github.com/xenking/acme-basket-challenge/internal/domain/product"
)

// newExampleBasket builds a basket over the reference configuration:
// three widgets, three delivery tiers, half-price pairs of R01.
func newExampleBasket(t *testing.T) *Basket {
	t.Helper()

	registry, err := product.NewRegistry([]product.Product{
		{Code: "R01", Name: "Red Widget", Price: decimal.RequireFromString("32.95")},
		{Code: "G01", Name: "Green Widget", Price: decimal.RequireFromString("24.95")},
		{Code: "B01", Name: "Blue Widget", Price: decimal.RequireFromString("7.95")},
	})
	require.NoError(t, err)

	table, err := delivery.NewTable([]delivery.Rule{
		{Threshold: decimal.Zero, Cost: decimal.RequireFromString("4.95")},
		{Threshold: decimal.NewFromInt(50), Cost: decimal.RequireFromString("2.95")},
		{Threshold: decimal.NewFromInt(90), Cost: decimal.Zero},
	})
	require.NoError(t, err)

	return New(registry, table, []offer.Offer{offer.NewHalfPricePair("R01")})
}

func TestBasket_Total(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  string
	}{
		{name: "empty basket still pays base delivery", codes: nil, want: "4.95"},
		{name: "no offer, base delivery", codes: []string{"B01", "G01"}, want: "37.85"},
		{name: "one discounted pair", codes: []string{"R01", "R01"}, want: "54.37"},
		{name: "mid delivery tier", codes: []string{"R01", "G01"}, want: "60.85"},
		{name: "free delivery with discount", codes: []string{"B01", "B01", "R01", "R01", "R01"}, want: "98.27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newExampleBasket(t)
			for _, code := range tt.codes {
				require.NoError(t, b.Add(code))
			}

			got := b.Total()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"total = %s, want %s", got, tt.want)
		})
	}
}

func TestBasket_AddUnknownCode(t *testing.T) {
	b := newExampleBasket(t)
	require.NoError(t, b.Add("B01"))

	err := b.Add("XYZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, product.ErrNotFound))
	assert.Contains(t, err.Error(), "XYZ")

	// The failed add leaves the basket untouched.
	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B01", items[0].Code)
}

func TestBasket_TotalIdempotent(t *testing.T) {
	b := newExampleBasket(t)
	require.NoError(t, b.Add("R01"))
	require.NoError(t, b.Add("R01"))

	first := b.Total()
	second := b.Total()
	assert.True(t, first.Equal(second))

	// Further adds are reflected by the next call.
	require.NoError(t, b.Add("B01"))
	assert.False(t, b.Total().Equal(first))
}

func TestBasket_ItemsIsACopy(t *testing.T) {
	b := newExampleBasket(t)
	require.NoError(t, b.Add("G01"))

	items := b.Items()
	items[0].Code = "mutated"

	assert.Equal(t, "G01", b.Items()[0].Code)
}

func TestBasket_Receipt(t *testing.T) {
	b := newExampleBasket(t)
	require.NoError(t, b.Add("R01"))
	require.NoError(t, b.Add("R01"))

	r := b.Receipt()

	require.Len(t, r.Items, 2)
	assert.True(t, r.Subtotal.Equal(decimal.RequireFromString("65.90")), "subtotal = %s", r.Subtotal)
	require.Len(t, r.Discounts, 1)
	assert.Equal(t, "buy one R01, get the second half price", r.Discounts[0].Description)
	assert.True(t, r.Discounts[0].Amount.Equal(decimal.RequireFromString("16.48")))
	assert.True(t, r.Delivery.Equal(decimal.RequireFromString("4.95")))
	assert.True(t, r.Total.Equal(decimal.RequireFromString("54.37")))
}

func TestBasket_ReceiptOmitsInapplicableOffers(t *testing.T) {
	b := newExampleBasket(t)
	require.NoError(t, b.Add("R01"))

	r := b.Receipt()
	assert.Empty(t, r.Discounts)
	assert.True(t, r.Total.Equal(decimal.RequireFromString("37.90")), "total = %s", r.Total)
}

func TestBasket_IDs(t *testing.T) {
	a := newExampleBasket(t)
	b := newExampleBasket(t)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
