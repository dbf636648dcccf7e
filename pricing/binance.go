package pricing

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// binance fetches spot prices from the Binance.US public ticker endpoint.
// Pairs are spelled compact and uppercase, e.g. BTCUSD.
type binance struct {
	baseURL string // overridable for tests
	client  *http.Client
}

const binanceBaseURL = "https://api.binance.us/api/v3"

func (b *binance) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	base := b.baseURL
	if base == "" {
		base = binanceBaseURL
	}
	addr := fmt.Sprintf("%s/ticker/price?symbol=%s", base, symbol)

	var payload struct {
		Price string `json:"price"`
	}
	if err := getJSON(ctx, b.client, addr, &payload); err != nil {
		return decimal.Zero, err
	}
	if payload.Price == "" {
		return decimal.Zero, fmt.Errorf("no price in response")
	}
	return asDecimal(payload.Price)
}
