// Package delivery resolves the delivery charge for an order value against
// a tiered rule table.
package delivery

import (
	"sort"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Rule pairs an order-value threshold with the delivery cost charged at or
// above that value.
type Rule struct {
	Threshold decimal.Decimal
	Cost      decimal.Decimal
}

// Table resolves delivery costs. Rules are validated and sorted once at
// construction; a Table is immutable afterwards and safe to share.
type Table struct {
	// rules sorted by threshold descending, so the first match during a
	// scan is the highest threshold not exceeding the amount.
	rules []Rule
}

// NewTable builds a Table from the given rules. The set must contain a
// zero-threshold fallback; duplicate thresholds and negative costs are
// configuration errors and fail construction.
func NewTable(rules []Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, errors.New("at least one delivery rule is required")
	}

	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Threshold.GreaterThan(sorted[j].Threshold)
	})

	hasFallback := false
	for i, r := range sorted {
		if r.Cost.IsNegative() {
			return nil, errors.Errorf("delivery cost must not be negative at threshold %s", r.Threshold)
		}
		if i > 0 && r.Threshold.Equal(sorted[i-1].Threshold) {
			return nil, errors.Errorf("duplicate delivery threshold %s", r.Threshold)
		}
		if r.Threshold.IsZero() {
			hasFallback = true
		}
	}
	if !hasFallback {
		return nil, errors.New("delivery rules must include a zero-threshold fallback")
	}

	return &Table{rules: sorted}, nil
}

// CostFor returns the cost of the highest-threshold rule whose threshold
// does not exceed amount. With the mandatory zero-threshold fallback this
// matches every non-negative amount; a negative amount falls through to a
// zero cost.
func (t *Table) CostFor(amount decimal.Decimal) decimal.Decimal {
	for _, r := range t.rules {
		if r.Threshold.LessThanOrEqual(amount) {
			return r.Cost
		}
	}
	return decimal.Zero
}
