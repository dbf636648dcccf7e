package pricing

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// coinbase fetches the spot price from the Coinbase public data API. Pairs are
// spelled hyphenated, e.g. BTC-USD; compact input is rewritten.
type coinbase struct {
	baseURL string // overridable for tests
	client  *http.Client
}

const coinbaseBaseURL = "https://api.coinbase.com/v2"

func (c *coinbase) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	base := c.baseURL
	if base == "" {
		base = coinbaseBaseURL
	}
	addr := fmt.Sprintf("%s/prices/%s/spot", base, pairWithHyphen(symbol))

	var payload any
	if err := getJSON(ctx, c.client, addr, &payload); err != nil {
		return decimal.Zero, err
	}
	amount, err := jsonpath.Get("$.data.amount", payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("no spot amount in response: %w", err)
	}
	return asDecimal(amount)
}
