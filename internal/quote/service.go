package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"coinquery/internal/coingecko"
	"coinquery/internal/coins"
)

// ErrNotFound means the provider does not know the requested coin or does not
// quote it in the requested currency.
var ErrNotFound = errors.New("unknown coin or currency")

// ErrUnsupported means the requested conversion pair is not quotable, e.g.
// fiat to fiat.
var ErrUnsupported = errors.New("unsupported conversion")

// Provider is the subset of the market-data API the service needs.
type Provider interface {
	SimplePrice(ctx context.Context, ids, vsCurrencies []string, includeMarket bool) (coingecko.SimplePrices, error)
	CoinsMarkets(ctx context.Context, id, vsCurrency string) (coingecko.Market, bool, error)
	CoinsList(ctx context.Context) ([]coingecko.Coin, error)
}

// Service answers the two questions the tool asks: what is a coin worth, and
// what is this amount worth in another currency.
type Service interface {
	Snapshot(ctx context.Context, coin string) (Snapshot, error)
	Convert(ctx context.Context, amount Amount, target string) (Amount, error)
}

type service struct {
	provider     Provider
	vsCurrencies []string
}

// NewService constructs a Service over the given market-data provider.
// vsCurrencies is the fixed set of quote currencies for price snapshots.
func NewService(p Provider, vsCurrencies []string) Service {
	if len(vsCurrencies) == 0 {
		vsCurrencies = []string{"usd", "jpy"}
	}
	return &service{provider: p, vsCurrencies: vsCurrencies}
}

// resolve turns a user-supplied coin name into a CoinGecko id. Known tickers
// resolve offline; anything else is looked up in the provider's coin list
// before falling back to treating the input as an id slug.
func (s *service) resolve(ctx context.Context, name string) (string, error) {
	if id, ok := coins.ID(name); ok {
		return id, nil
	}
	slug := coins.Slug(name)
	list, err := s.provider.CoinsList(ctx)
	if err != nil {
		// The list is only a resolution aid; the slug may still be valid.
		return slug, nil
	}
	upper := strings.ToUpper(name)
	for _, c := range list {
		if strings.ToUpper(c.Symbol) == upper {
			return c.ID, nil
		}
	}
	for _, c := range list {
		if c.ID == slug {
			return c.ID, nil
		}
	}
	return slug, nil
}

// Snapshot resolves the coin and fetches current prices and market data.
func (s *service) Snapshot(ctx context.Context, coin string) (Snapshot, error) {
	id, err := s.resolve(ctx, coin)
	if err != nil {
		return Snapshot{}, err
	}

	var (
		prices   coingecko.SimplePrices
		market   coingecko.Market
		hasStats bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prices, err = s.provider.SimplePrice(gctx, []string{id}, s.vsCurrencies, true)
		return err
	})
	g.Go(func() error {
		var err error
		market, hasStats, err = s.provider.CoinsMarkets(gctx, id, "usd")
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	values, ok := prices[id]
	if !ok || len(values) == 0 {
		return Snapshot{}, fmt.Errorf("%q: %w", coin, ErrNotFound)
	}

	snap := Snapshot{
		ID:         id,
		Symbol:     strings.ToUpper(coin),
		Prices:     map[string]decimal.Decimal{},
		MarketCaps: map[string]decimal.Decimal{},
		Volumes:    map[string]decimal.Decimal{},
	}
	for _, cur := range s.vsCurrencies {
		lower := strings.ToLower(cur)
		code := strings.ToUpper(cur)
		p, ok := values[lower]
		if !ok {
			continue
		}
		snap.Currencies = append(snap.Currencies, code)
		snap.Prices[code] = p
		if mcap, ok := values[lower+"_market_cap"]; ok {
			snap.MarketCaps[code] = mcap
		}
		if vol, ok := values[lower+"_24h_vol"]; ok {
			snap.Volumes[code] = vol
		}
	}
	if len(snap.Currencies) == 0 {
		return Snapshot{}, fmt.Errorf("%q: %w", coin, ErrNotFound)
	}

	if hasStats {
		if market.Symbol != "" {
			snap.Symbol = strings.ToUpper(market.Symbol)
		}
		snap.Name = market.Name
		snap.FullyDiluted = market.FullyDilutedValue
		snap.CirculatingSupply = market.CirculatingSupply
		snap.TotalSupply = market.TotalSupply
		snap.MaxSupply = market.MaxSupply
	}
	return snap, nil
}

// Convert computes the target-currency value of amount using live rates.
// Crypto-to-crypto pairs cross through USD.
func (s *service) Convert(ctx context.Context, amount Amount, target string) (Amount, error) {
	from := strings.ToUpper(amount.Currency)
	to := strings.ToUpper(target)

	fromFiat := coins.IsFiat(from)
	toFiat := coins.IsFiat(to)

	switch {
	case fromFiat && toFiat:
		return Amount{}, fmt.Errorf("%s to %s: %w", from, to, ErrUnsupported)

	case fromFiat:
		// fiat -> crypto: divide by the coin's price in that fiat.
		price, err := s.coinPrice(ctx, target, from)
		if err != nil {
			return Amount{}, err
		}
		return Amount{Value: amount.Value.Div(price), Currency: to}, nil

	case toFiat:
		// crypto -> fiat: multiply by the coin's price in that fiat.
		price, err := s.coinPrice(ctx, amount.Currency, to)
		if err != nil {
			return Amount{}, err
		}
		return Amount{Value: amount.Value.Mul(price), Currency: to}, nil

	default:
		// crypto -> crypto: cross through USD.
		fromID, err := s.resolve(ctx, amount.Currency)
		if err != nil {
			return Amount{}, err
		}
		toID, err := s.resolve(ctx, target)
		if err != nil {
			return Amount{}, err
		}
		prices, err := s.provider.SimplePrice(ctx, []string{fromID, toID}, []string{"usd"}, false)
		if err != nil {
			return Amount{}, err
		}
		fromUSD, ok := prices.Price(fromID, "usd")
		if !ok || fromUSD.IsZero() {
			return Amount{}, fmt.Errorf("%q: %w", amount.Currency, ErrNotFound)
		}
		toUSD, ok := prices.Price(toID, "usd")
		if !ok || toUSD.IsZero() {
			return Amount{}, fmt.Errorf("%q: %w", target, ErrNotFound)
		}
		return Amount{Value: amount.Value.Mul(fromUSD).Div(toUSD), Currency: to}, nil
	}
}

// coinPrice fetches one coin's price in one fiat currency.
func (s *service) coinPrice(ctx context.Context, coin, fiat string) (decimal.Decimal, error) {
	id, err := s.resolve(ctx, coin)
	if err != nil {
		return decimal.Decimal{}, err
	}
	prices, err := s.provider.SimplePrice(ctx, []string{id}, []string{strings.ToLower(fiat)}, false)
	if err != nil {
		return decimal.Decimal{}, err
	}
	price, ok := prices.Price(id, fiat)
	if !ok || price.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", coin, ErrNotFound)
	}
	return price, nil
}
