// Package app wires configuration into the pricing collaborators shared by
// every basket in a session.
package app

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/acme-basket-challenge/internal/domain/basket"
	"github.com/xenking/acme-basket-challenge/internal/domain/delivery"
	"github.com/xenking/acme-basket-challenge/internal/domain/offer"
	"github.com/xenking/acme-basket-challenge/internal/domain/product"
)

// OfferHalfPricePair is the config type name for offer.HalfPricePair.
const OfferHalfPricePair = "half_price_pair"

// Pricing bundles the immutable collaborators built from configuration:
// catalog, delivery table, and offer list. One Pricing serves any number of
// baskets, concurrently if needed, because nothing in it mutates after
// construction.
type Pricing struct {
	Catalog  *product.Registry
	Delivery *delivery.Table
	Offers   []offer.Offer
}

// BuildPricing validates cfg and constructs the pricing collaborators.
// Every configuration problem (malformed decimals, duplicate codes or
// thresholds, missing delivery fallback, unknown offer types, offers
// targeting unknown products) is reported here, before any basket exists.
func BuildPricing(cfg *Config) (*Pricing, error) {
	products := make([]product.Product, len(cfg.Catalog))
	for i, pc := range cfg.Catalog {
		price, err := decimal.NewFromString(pc.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "product %s: parse price %q", pc.Code, pc.Price)
		}
		products[i] = product.Product{Code: pc.Code, Name: pc.Name, Price: price}
	}
	registry, err := product.NewRegistry(products)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog")
	}

	rules := make([]delivery.Rule, len(cfg.Delivery))
	for i, rc := range cfg.Delivery {
		threshold, err := decimal.NewFromString(rc.Threshold)
		if err != nil {
			return nil, errors.Wrapf(err, "delivery rule %d: parse threshold %q", i, rc.Threshold)
		}
		cost, err := decimal.NewFromString(rc.Cost)
		if err != nil {
			return nil, errors.Wrapf(err, "delivery rule %d: parse cost %q", i, rc.Cost)
		}
		rules[i] = delivery.Rule{Threshold: threshold, Cost: cost}
	}
	table, err := delivery.NewTable(rules)
	if err != nil {
		return nil, errors.Wrap(err, "build delivery table")
	}

	offers := make([]offer.Offer, len(cfg.Offers))
	for i, oc := range cfg.Offers {
		switch oc.Type {
		case OfferHalfPricePair:
			if _, ok := registry.Lookup(oc.Product); !ok {
				return nil, errors.Errorf("offer %d: product %s is not in the catalog", i, oc.Product)
			}
			offers[i] = offer.NewHalfPricePair(oc.Product)
		default:
			return nil, errors.Errorf("offer %d: unsupported type %q", i, oc.Type)
		}
	}

	return &Pricing{
		Catalog:  registry,
		Delivery: table,
		Offers:   offers,
	}, nil
}

// NewBasket creates an empty basket priced with this configuration.
func (p *Pricing) NewBasket() *basket.Basket {
	return basket.New(p.Catalog, p.Delivery, p.Offers)
}
