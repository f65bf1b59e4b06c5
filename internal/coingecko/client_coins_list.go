package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

// Coin is one entry of the provider's coin list.
type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CoinsList retrieves the full list of supported coins (GET /coins/list).
// The list runs to five digits of entries, so callers should only reach for
// it when the built-in symbol registry comes up empty.
func (c *Client) CoinsList(ctx context.Context) ([]Coin, error) {
	var coinList []Coin
	if err := c.getJSON(ctx, "/coins/list", url.Values{}, &coinList); err != nil {
		return nil, fmt.Errorf("coins list: %w", err)
	}
	return coinList, nil
}
