package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Market is one row of the /coins/markets response. Nullable fields stay
// pointers; CoinGecko reports null for coins without a max supply or FDV.
type Market struct {
	ID                string           `json:"id"`
	Symbol            string           `json:"symbol"`
	Name              string           `json:"name"`
	CurrentPrice      decimal.Decimal  `json:"current_price"`
	MarketCap         *decimal.Decimal `json:"market_cap"`
	FullyDilutedValue *decimal.Decimal `json:"fully_diluted_valuation"`
	TotalVolume       *decimal.Decimal `json:"total_volume"`
	CirculatingSupply *decimal.Decimal `json:"circulating_supply"`
	TotalSupply       *decimal.Decimal `json:"total_supply"`
	MaxSupply         *decimal.Decimal `json:"max_supply"`
}

// CoinsMarkets retrieves market data for a single coin id against one
// currency (GET /coins/markets). Returns ok=false when the id is unknown to
// the provider.
func (c *Client) CoinsMarkets(ctx context.Context, id, vsCurrency string) (Market, bool, error) {
	query := url.Values{}
	query.Add("vs_currency", strings.ToLower(vsCurrency))
	query.Add("ids", id)
	query.Add("per_page", "1")

	var markets []Market
	if err := c.getJSON(ctx, "/coins/markets", query, &markets); err != nil {
		return Market{}, false, fmt.Errorf("coins markets: %w", err)
	}
	if len(markets) == 0 {
		return Market{}, false, nil
	}
	return markets[0], true, nil
}
