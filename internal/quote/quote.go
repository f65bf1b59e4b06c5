package quote

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal quantity in a fiat or crypto currency.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// Snapshot is the per-invocation view of one coin's market state. Prices and
// market caps are keyed by upper-cased currency code; nil pointers mean the
// provider reported no value.
type Snapshot struct {
	ID     string
	Symbol string
	Name   string

	// Currencies preserves the configured display order for Prices,
	// MarketCaps and Volumes.
	Currencies []string

	Prices     map[string]decimal.Decimal
	MarketCaps map[string]decimal.Decimal
	Volumes    map[string]decimal.Decimal

	FullyDiluted      *decimal.Decimal
	CirculatingSupply *decimal.Decimal
	TotalSupply       *decimal.Decimal
	MaxSupply         *decimal.Decimal
}
