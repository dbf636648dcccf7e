package pricing

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// okx fetches the last traded price from the OKX public market ticker. Pairs
// are spelled hyphenated, e.g. BTC-USD; compact input is rewritten.
type okx struct {
	baseURL string // overridable for tests
	client  *http.Client
}

const okxBaseURL = "https://www.okx.com/api/v5"

func (o *okx) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	base := o.baseURL
	if base == "" {
		base = okxBaseURL
	}
	addr := fmt.Sprintf("%s/market/ticker?instId=%s", base, pairWithHyphen(symbol))

	var payload any
	if err := getJSON(ctx, o.client, addr, &payload); err != nil {
		return decimal.Zero, err
	}
	last, err := jsonpath.Get("$.data[0].last", payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("no ticker data in response: %w", err)
	}
	return asDecimal(last)
}
