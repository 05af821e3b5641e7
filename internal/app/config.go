package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete pricing configuration, loadable from
// environment variables (ACME_ prefix) or YAML config files. Monetary
// values are decimal strings parsed at build time so malformed amounts fail
// at setup, not mid-pricing.
type Config struct {
	Catalog  []ProductConfig      `usage:"Product catalog entries"`
	Delivery []DeliveryRuleConfig `usage:"Delivery charge tiers"`
	Offers   []OfferConfig        `usage:"Discount offers applied to every basket"`
}

// ProductConfig declares one catalog entry.
type ProductConfig struct {
	Code  string `usage:"Unique product code"`
	Name  string `usage:"Display name"`
	Price string `usage:"Unit price, e.g. 32.95"`
}

// DeliveryRuleConfig declares one delivery tier.
type DeliveryRuleConfig struct {
	Threshold string `usage:"Order value at which this tier starts"`
	Cost      string `usage:"Delivery charge for this tier"`
}

// OfferConfig declares one discount offer.
type OfferConfig struct {
	Type    string `usage:"Offer type (half_price_pair)"`
	Product string `usage:"Target product code"`
}

// LoadConfig loads configuration from environment variables and the given
// YAML files (missing files are skipped). Sections absent from every source
// fall back to the reference example configuration.
func LoadConfig(files ...string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		// Command-line flags belong to the CLI entrypoint.
		SkipFlags: true,
		EnvPrefix: "ACME",
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
			".yml":  aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// DefaultConfig returns the reference configuration: three widgets, three
// delivery tiers, and the half-price pair offer on red widgets.
func DefaultConfig() *Config {
	return &Config{
		Catalog: []ProductConfig{
			{Code: "R01", Name: "Red Widget", Price: "32.95"},
			{Code: "G01", Name: "Green Widget", Price: "24.95"},
			{Code: "B01", Name: "Blue Widget", Price: "7.95"},
		},
		Delivery: []DeliveryRuleConfig{
			{Threshold: "0", Cost: "4.95"},
			{Threshold: "50", Cost: "2.95"},
			{Threshold: "90", Cost: "0"},
		},
		Offers: []OfferConfig{
			{Type: "half_price_pair", Product: "R01"},
		},
	}
}

// applyDefaults fills sections not provided by any config source with the
// reference example data, section by section.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if len(c.Catalog) == 0 {
		c.Catalog = def.Catalog
	}
	if len(c.Delivery) == 0 {
		c.Delivery = def.Delivery
	}
	if len(c.Offers) == 0 {
		c.Offers = def.Offers
	}
}
