package folio

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fakeQuoter serves canned prices keyed by "platform/symbol" and records
// every call, so tests can assert on fetch count and isolation.
type fakeQuoter struct {
	prices map[string]float64
	errs   map[string]error
	calls  []string
}

func (f *fakeQuoter) Quote(platform, symbol string) (decimal.Decimal, error) {
	key := platform + "/" + symbol
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return decimal.Zero, err
	}
	price, ok := f.prices[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: no price", key)
	}
	return decimal.NewFromFloat(price), nil
}

func TestNewReport_EmptyLedger(t *testing.T) {
	quoter := &fakeQuoter{}
	report, err := NewReport(NewLedger(), quoter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Empty() {
		t.Error("report from an empty ledger should be empty")
	}
	if len(quoter.calls) != 0 {
		t.Errorf("an empty ledger must not trigger fetches, got %d", len(quoter.calls))
	}
}

func TestNewReport_SinglePosition(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "coinbase", 20000, 0.5, 0),
		testTx(t, "aaaa0002", "BTCUSD", "coinbase", 10000, 0.3, 1),
	)
	quoter := &fakeQuoter{prices: map[string]float64{"coinbase/BTCUSD": 50000}}

	report, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(report.Positions))
	}
	p := report.Positions[0]
	if !p.TotalQty.Equal(Q(0.8)) {
		t.Errorf("total quantity = %s, want 0.8", p.TotalQty)
	}
	if !p.TotalCost.Equal(M(30000)) {
		t.Errorf("total cost = %s, want 30000", p.TotalCost.Decimal())
	}
	if !p.AvgCost.Equal(M(37500)) {
		t.Errorf("avg cost = %s, want 37500", p.AvgCost.Decimal())
	}
	if !p.MarketValue.Equal(P(40000)) {
		t.Errorf("market value = %s, want 40000", p.MarketValue)
	}
	if !p.PnL.Equal(P(10000)) {
		t.Errorf("pnl = %s, want 10000", p.PnL)
	}
	pct, ok := p.PnLPercent()
	if !ok {
		t.Fatal("pnl percent should be available")
	}
	if !pct.Equal(Percent(100.0 / 3)) {
		t.Errorf("pnl percent = %s, want %s", pct, Percent(100.0/3))
	}
	// Exactly one fetch per distinct (platform, symbol) pair.
	if len(quoter.calls) != 1 {
		t.Errorf("got %d fetches, want 1", len(quoter.calls))
	}
}

func TestNewReport_FailureIsolation(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "binance", 20000, 0.5, 0),
		testTx(t, "aaaa0002", "VOO", "fidelity", 4500, 10, 1),
	)
	quoter := &fakeQuoter{
		prices: map[string]float64{"fidelity/VOO": 500},
		errs:   map[string]error{"binance/BTCUSD": fmt.Errorf("binance BTCUSD: connection refused")},
	}

	report, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatalf("a failed fetch must not abort the report: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(report.Warnings), report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "binance") || !strings.Contains(report.Warnings[0], "BTCUSD") {
		t.Errorf("warning should name the venue and symbol: %q", report.Warnings[0])
	}

	// Positions are sorted by platform then symbol: binance first.
	failed, priced := report.Positions[0], report.Positions[1]
	if failed.LivePrice.Available() {
		t.Error("the failed position should have no live price")
	}
	if failed.MarketValue.Available() || failed.PnL.Available() {
		t.Error("market value and pnl should be unavailable without a price")
	}
	if _, ok := failed.PnLPercent(); ok {
		t.Error("pnl percent should be unavailable without a price")
	}
	// The cost columns survive the failure.
	if !failed.TotalCost.Equal(M(20000)) {
		t.Errorf("failed position cost = %s, want 20000", failed.TotalCost.Decimal())
	}

	if !priced.MarketValue.Equal(P(5000)) {
		t.Errorf("the healthy position should be fully priced, value = %s", priced.MarketValue)
	}
}

func TestNewReport_SymbolsAcrossPlatforms(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "coinbase", 20000, 0.5, 0),
		testTx(t, "aaaa0002", "BTCUSD", "binance", 10000, 0.25, 1),
		testTx(t, "aaaa0003", "VOO", "fidelity", 4500, 10, 2),
	)
	quoter := &fakeQuoter{prices: map[string]float64{
		"coinbase/BTCUSD": 50000,
		"binance/BTCUSD":  50000,
		"fidelity/VOO":    500,
	}}

	report, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Positions) != 3 {
		t.Fatalf("got %d positions, want 3", len(report.Positions))
	}
	if len(report.Symbols) != 2 {
		t.Fatalf("got %d symbol summaries, want 2", len(report.Symbols))
	}
	// Sorted lexicographically: BTCUSD before VOO.
	btc := report.Symbols[0]
	if btc.Symbol != "BTCUSD" {
		t.Fatalf("first symbol = %q, want BTCUSD", btc.Symbol)
	}
	if !btc.TotalQty.Equal(Q(0.75)) {
		t.Errorf("cross-platform quantity = %s, want 0.75", btc.TotalQty)
	}
	if !btc.TotalCost.Equal(M(30000)) {
		t.Errorf("cross-platform cost = %s, want 30000", btc.TotalCost.Decimal())
	}
	if !btc.AvgCost.Equal(M(40000)) {
		t.Errorf("cross-platform avg cost = %s, want 40000", btc.AvgCost.Decimal())
	}
}

func TestNewReport_ClassSummaries(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "coinbase", 20000, 0.5, 0),
		testTx(t, "aaaa0002", "VOO", "fidelity", 4500, 10, 1),
		testTx(t, "aaaa0003", "QQQM", "fidelity", 2000, 10, 2),
	)
	quoter := &fakeQuoter{prices: map[string]float64{
		"coinbase/BTCUSD": 50000,
		"fidelity/VOO":    500,
		"fidelity/QQQM":   210,
	}}

	report, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Classes) != 2 {
		t.Fatalf("got %d classes, want 2", len(report.Classes))
	}
	// Sorted by class name: crypto before stock.
	crypto, stock := report.Classes[0], report.Classes[1]
	if crypto.Class != Crypto || stock.Class != Stock {
		t.Fatalf("unexpected class order: %v, %v", crypto.Class, stock.Class)
	}
	if !crypto.MarketValue.Equal(P(25000)) {
		t.Errorf("crypto value = %s, want 25000", crypto.MarketValue)
	}
	if !stock.TotalCost.Equal(M(6500)) {
		t.Errorf("stock cost = %s, want 6500", stock.TotalCost.Decimal())
	}
	if !stock.MarketValue.Equal(P(7100)) {
		t.Errorf("stock value = %s, want 7100", stock.MarketValue)
	}
	if !stock.PnL.Equal(P(600)) {
		t.Errorf("stock pnl = %s, want 600", stock.PnL)
	}
}

func TestNewReport_ClassPoisonedByUnavailablePrice(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "coinbase", 20000, 0.5, 0),
		testTx(t, "aaaa0002", "ETHUSD", "binance", 3000, 1, 1),
		testTx(t, "aaaa0003", "VOO", "fidelity", 4500, 10, 2),
	)
	quoter := &fakeQuoter{
		prices: map[string]float64{"coinbase/BTCUSD": 50000, "fidelity/VOO": 500},
		errs:   map[string]error{"binance/ETHUSD": fmt.Errorf("binance ETHUSD: timeout")},
	}

	report, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	crypto, stock := report.Classes[0], report.Classes[1]
	if crypto.MarketValue.Available() {
		t.Error("crypto value should be unavailable when one constituent price is missing")
	}
	if crypto.PnL.Available() {
		t.Error("crypto pnl should be unavailable when one constituent price is missing")
	}
	// The class cost is still the full sum.
	if !crypto.TotalCost.Equal(M(23000)) {
		t.Errorf("crypto cost = %s, want 23000", crypto.TotalCost.Decimal())
	}
	// The other class is untouched.
	if !stock.MarketValue.Equal(P(5000)) {
		t.Errorf("stock value = %s, want 5000", stock.MarketValue)
	}
}

func TestNewReport_Idempotent(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "coinbase", 20000, 0.5, 0),
		testTx(t, "aaaa0002", "VOO", "fidelity", 4500, 10, 1),
	)
	quoter := &fakeQuoter{prices: map[string]float64{
		"coinbase/BTCUSD": 50000,
		"fidelity/VOO":    500,
	}}

	first, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewReport(ledger, quoter)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Positions) != len(second.Positions) {
		t.Fatal("reports differ in position count")
	}
	for i := range first.Positions {
		a, b := first.Positions[i], second.Positions[i]
		if a.Platform != b.Platform || a.Symbol != b.Symbol ||
			!a.TotalQty.Equal(b.TotalQty) || !a.TotalCost.Equal(b.TotalCost) ||
			!a.MarketValue.Equal(b.MarketValue) {
			t.Errorf("position %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestNewReport_ZeroQuantityGroup(t *testing.T) {
	// Quantities are invariantly positive, so a cancelling pair can only come
	// from a corrupted ledger; the report must refuse to divide by zero.
	ledger := NewLedger()
	ledger.Append(
		testTx(t, "aaaa0001", "BTCUSD", "coinbase", 100, 1, 0),
		Transaction{
			ID: "aaaa0002", Symbol: "BTCUSD", Platform: "coinbase",
			Amount: M(100), Quantity: Q(-1),
			Time: time.Date(2026, 8, 1, 10, 1, 0, 0, time.UTC),
		},
	)
	_, err := NewReport(ledger, &fakeQuoter{})
	if err == nil {
		t.Fatal("expected a data integrity error")
	}
	if !strings.Contains(err.Error(), "data integrity") {
		t.Errorf("error should flag data integrity, got %v", err)
	}
}
