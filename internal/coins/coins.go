package coins

import "strings"

// registry maps common ticker symbols to CoinGecko coin ids. Symbols outside
// this table are resolved against the provider's coin list at query time.
var registry = map[string]string{
	"ETH":   "ethereum",
	"BTC":   "bitcoin",
	"USDC":  "usd-coin",
	"USDT":  "tether",
	"BNB":   "binancecoin",
	"SOL":   "solana",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"UNI":   "uniswap",
	"ATOM":  "cosmos",
	"ETC":   "ethereum-classic",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"XLM":   "stellar",
	"ALGO":  "algorand",
}

// fiat currency codes the tool quotes against.
var fiats = map[string]struct{}{
	"USD": {},
	"JPY": {},
}

// ID returns the CoinGecko id for a ticker symbol, if known.
func ID(symbol string) (string, bool) {
	id, ok := registry[strings.ToUpper(symbol)]
	return id, ok
}

// Slug normalizes a user-supplied coin name into the form CoinGecko uses for
// ids when the symbol is not in the registry.
func Slug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsFiat reports whether code is a supported fiat currency.
func IsFiat(code string) bool {
	_, ok := fiats[strings.ToUpper(code)]
	return ok
}
