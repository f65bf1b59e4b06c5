package format

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// symbols maps fiat currency codes to their display prefix.
var symbols = map[string]string{
	"USD": "$",
	"JPY": "¥",
}

var (
	oneTenThousandth = decimal.New(1, -4)
	one              = decimal.New(1, 0)
)

// Price renders a fiat price with thousands separators, two fixed decimals
// and the currency code as suffix: "4,123.45USD".
func Price(v decimal.Decimal, currency string) string {
	return humanize.FormatFloat("#,###.##", v.InexactFloat64()) + strings.ToUpper(currency)
}

// CryptoAmount renders a crypto quantity with precision depending on its
// magnitude, always keeping the currency suffix: "0.00002531ETH".
func CryptoAmount(v decimal.Decimal, currency string) string {
	abs := v.Abs()
	var places int32
	switch {
	case abs.Cmp(oneTenThousandth) < 0:
		places = 8
	case abs.Cmp(one) < 0:
		places = 6
	default:
		places = 2
	}
	return v.StringFixed(places) + strings.ToUpper(currency)
}

// Money renders a market-data value prefixed with the currency symbol and
// grouped by thousands, dropping fraction digits: "$498,123,456,789".
func Money(v decimal.Decimal, currency string) string {
	prefix := symbols[strings.ToUpper(currency)]
	return prefix + humanize.FormatFloat("#,###.", v.InexactFloat64())
}

// Supply renders a coin supply with thousands separators and the ticker as
// suffix: "120,690,000 ETH".
func Supply(v decimal.Decimal, ticker string) string {
	return humanize.FormatFloat("#,###.", v.InexactFloat64()) + " " + strings.ToUpper(ticker)
}
