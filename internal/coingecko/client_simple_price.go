package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// SimplePrices maps a coin id to its quoted values keyed by currency code.
// With market fields enabled the inner map also carries "<cur>_market_cap"
// and "<cur>_24h_vol" entries, mirroring the API response.
type SimplePrices map[string]map[string]decimal.Decimal

// Price returns the price of the coin in the given currency.
func (p SimplePrices) Price(id, currency string) (decimal.Decimal, bool) {
	values, ok := p[id]
	if !ok {
		return decimal.Decimal{}, false
	}
	v, ok := values[strings.ToLower(currency)]
	return v, ok
}

// SimplePrice retrieves current prices for the given coin ids against the
// given currencies (GET /simple/price). When includeMarket is set the
// response also carries per-currency market cap and 24h volume.
func (c *Client) SimplePrice(ctx context.Context, ids, vsCurrencies []string, includeMarket bool) (SimplePrices, error) {
	query := url.Values{}
	query.Add("ids", strings.Join(ids, ","))
	query.Add("vs_currencies", strings.ToLower(strings.Join(vsCurrencies, ",")))
	if includeMarket {
		query.Add("include_market_cap", "true")
		query.Add("include_24hr_vol", "true")
	}

	var prices SimplePrices
	if err := c.getJSON(ctx, "/simple/price", query, &prices); err != nil {
		return nil, fmt.Errorf("simple price: %w", err)
	}
	return prices, nil
}
