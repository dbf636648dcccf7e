// Package pricing maps (venue, symbol) pairs to current USD prices, hiding
// each venue's wire format behind one capability: fetch the price of a symbol.
//
// Every call is a single synchronous GET with a bounded timeout. There are no
// retries, no caching and no rate limiting; a report run issues exactly one
// request per distinct (platform, symbol) pair.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// fetchTimeout bounds every price fetch. A timed-out fetch is an ordinary
// fetch error, never fatal for the caller.
const fetchTimeout = 15 * time.Second

// Venue identifies a supported trading venue, doubling as the price-source
// selector for transactions recorded against it.
type Venue string

const (
	Binance  Venue = "binance"
	OKX      Venue = "okx"
	Coinbase Venue = "coinbase"
	Fidelity Venue = "fidelity" // equities; quotes come from stooq.pl
)

func (v Venue) String() string { return string(v) }

// ParseVenue parses a platform name into a Venue.
func ParseVenue(s string) (Venue, error) {
	switch v := Venue(strings.ToLower(s)); v {
	case Binance, OKX, Coinbase, Fidelity:
		return v, nil
	default:
		return "", fmt.Errorf("unsupported venue: %q", s)
	}
}

// Venues returns all supported venues in sorted order.
func Venues() []Venue {
	vs := []Venue{Binance, OKX, Coinbase, Fidelity}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Error reports a failed price fetch, carrying the venue and symbol so the
// caller can downgrade exactly the affected row.
type Error struct {
	Venue  Venue
	Symbol string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Venue, e.Symbol, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Source fetches the current USD price of a symbol from one venue.
type Source interface {
	Price(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Client dispatches quote requests to the venue's Source. It implements the
// report engine's Quoter boundary.
type Client struct {
	sources map[Venue]Source
}

// NewClient returns a Client with the default source per venue, all sharing
// one HTTP client with the uniform fetch timeout.
func NewClient() *Client {
	hc := &http.Client{Timeout: fetchTimeout}
	return &Client{sources: map[Venue]Source{
		Binance:  &binance{client: hc},
		OKX:      &okx{client: hc},
		Coinbase: &coinbase{client: hc},
		Fidelity: &stooq{client: hc},
	}}
}

// Register replaces the source for a venue, mainly for tests.
func (c *Client) Register(v Venue, s Source) {
	c.sources[v] = s
}

// Quote fetches the current USD price of symbol on platform. Any failure is
// returned as a *Error carrying the venue and symbol.
func (c *Client) Quote(platform, symbol string) (decimal.Decimal, error) {
	venue, err := ParseVenue(platform)
	if err != nil {
		return decimal.Zero, &Error{Venue: Venue(platform), Symbol: symbol, Err: err}
	}
	src, ok := c.sources[venue]
	if !ok {
		return decimal.Zero, &Error{Venue: venue, Symbol: symbol, Err: fmt.Errorf("no source registered")}
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	price, err := src.Price(ctx, symbol)
	if err != nil {
		return decimal.Zero, &Error{Venue: venue, Symbol: symbol, Err: err}
	}
	return price, nil
}

// pairWithHyphen rewrites a compact pair into the hyphenated spelling used by
// okx and coinbase: BTCUSD becomes BTC-USD. Already-hyphenated input is kept.
func pairWithHyphen(symbol string) string {
	symbol = strings.ToUpper(symbol)
	if strings.Contains(symbol, "-") || len(symbol) <= 3 {
		return symbol
	}
	return symbol[:3] + "-" + symbol[3:]
}

// getJSON performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func getJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// asDecimal converts a drilled JSON value to a decimal. Venues disagree on
// whether prices are numbers or strings, so both are accepted.
func asDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid price string %q: %w", t, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid price number %q: %w", t, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("price is neither a number nor a string: %v", v)
	}
}
