package pricing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// stooq fetches daily equity quotes from the stooq.pl CSV endpoint, serving
// symbols held at brokerages. US tickers without an explicit exchange suffix
// are rewritten to stooq's lowercase ".us" form, e.g. VOO becomes voo.us.
type stooq struct {
	baseURL string // overridable for tests
	client  *http.Client
}

const stooqBaseURL = "https://stooq.pl"

// stooq rejects requests without a browser-looking agent.
const stooqUserAgent = "Mozilla/5.0"

// stooqTicker normalizes a symbol to stooq's spelling.
func stooqTicker(symbol string) string {
	t := strings.ToLower(symbol)
	if !strings.Contains(t, ".") {
		t += ".us"
	}
	return t
}

func (s *stooq) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	base := s.baseURL
	if base == "" {
		base = stooqBaseURL
	}
	addr := fmt.Sprintf("%s/q/l/?s=%s&i=d", base, stooqTicker(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("User-Agent", stooqUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, err
	}

	// The payload is a header line plus one data row:
	// Symbol,Date,Time,Open,High,Low,Close,Volume
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	fields := strings.Split(lines[len(lines)-1], ",")
	if len(fields) < 7 {
		return decimal.Zero, fmt.Errorf("malformed quote row %q", lines[len(lines)-1])
	}
	closePrice := strings.TrimSpace(fields[6])
	d, err := decimal.NewFromString(closePrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid close price %q: %w", closePrice, err)
	}
	return d, nil
}
