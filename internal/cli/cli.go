package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"coinquery/internal/coins"
	"coinquery/internal/format"
	"coinquery/internal/quote"
)

// ErrBadAmount means the <amount><currency> argument could not be parsed.
var ErrBadAmount = errors.New("invalid amount format")

// amountPattern splits the leading numeric prefix from the trailing currency
// code, e.g. "100JPY" or "1,234.5ETH".
var amountPattern = regexp.MustCompile(`^([\d,]+\.?\d*)([A-Za-z]+)$`)

const usage = `usage:
  coinquery <COIN>                     show current price and market data
  coinquery <AMOUNT><CURRENCY> <COIN>  convert an amount between currencies

examples:
  coinquery ETH
  coinquery 100JPY ETH
  coinquery 0.5ETH BTC
`

// CLI parses arguments, runs one query and prints the result.
type CLI struct {
	stdout  io.Writer
	stderr  io.Writer
	service quote.Service
}

// New constructs a CLI writing results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer, service quote.Service) *CLI {
	return &CLI{stdout: stdout, stderr: stderr, service: service}
}

// Run executes one invocation and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	switch len(args) {
	case 1:
		if err := c.showPrice(ctx, args[0]); err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			return 1
		}
		return 0

	case 2:
		amount, err := ParseAmount(args[0])
		if err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			fmt.Fprintln(c.stderr, "expected <number><currency>, e.g. 100JPY or 0.5ETH")
			return 1
		}
		if err := c.convert(ctx, amount, args[1]); err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			return 1
		}
		return 0

	default:
		fmt.Fprint(c.stderr, usage)
		return 1
	}
}

// ParseAmount parses an <amount><currency> argument such as "100JPY".
// Thousands-separator commas in the numeric part are accepted.
func ParseAmount(arg string) (quote.Amount, error) {
	m := amountPattern.FindStringSubmatch(strings.TrimSpace(arg))
	if m == nil {
		return quote.Amount{}, fmt.Errorf("%w: %q", ErrBadAmount, arg)
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return quote.Amount{}, fmt.Errorf("%w: %q", ErrBadAmount, arg)
	}
	if value.Sign() <= 0 {
		return quote.Amount{}, fmt.Errorf("%w: amount must be positive", ErrBadAmount)
	}
	return quote.Amount{Value: value, Currency: strings.ToUpper(m[2])}, nil
}

func (c *CLI) showPrice(ctx context.Context, coin string) error {
	snap, err := c.service.Snapshot(ctx, coin)
	if err != nil {
		return err
	}

	for _, cur := range snap.Currencies {
		fmt.Fprintln(c.stdout, format.Price(snap.Prices[cur], cur))
	}

	fmt.Fprintf(c.stdout, "%-13s %s\n", "Market cap:", moneyLine(snap.MarketCaps, snap.Currencies))
	fmt.Fprintf(c.stdout, "%-13s %s\n", "24h volume:", moneyLine(snap.Volumes, snap.Currencies))
	fmt.Fprintf(c.stdout, "%-13s %s\n", "FDV:", optMoney(snap.FullyDiluted, "USD"))
	fmt.Fprintf(c.stdout, "%-13s %s\n", "Circulating:", optSupply(snap.CirculatingSupply, snap.Symbol))
	fmt.Fprintf(c.stdout, "%-13s %s\n", "Total supply:", optSupply(snap.TotalSupply, snap.Symbol))
	fmt.Fprintf(c.stdout, "%-13s %s\n", "Max supply:", optSupply(snap.MaxSupply, snap.Symbol))
	return nil
}

func (c *CLI) convert(ctx context.Context, amount quote.Amount, target string) error {
	out, err := c.service.Convert(ctx, amount, target)
	if err != nil {
		return err
	}
	if coins.IsFiat(out.Currency) {
		fmt.Fprintln(c.stdout, format.Price(out.Value, out.Currency))
	} else {
		fmt.Fprintln(c.stdout, format.CryptoAmount(out.Value, out.Currency))
	}
	return nil
}

// moneyLine joins per-currency values in display order, "-" when none.
func moneyLine(values map[string]decimal.Decimal, order []string) string {
	var parts []string
	for _, cur := range order {
		if v, ok := values[cur]; ok {
			parts = append(parts, format.Money(v, cur))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "  ")
}

func optMoney(v *decimal.Decimal, currency string) string {
	if v == nil {
		return "-"
	}
	return format.Money(*v, currency)
}

func optSupply(v *decimal.Decimal, ticker string) string {
	if v == nil {
		return "-"
	}
	return format.Supply(*v, ticker)
}
