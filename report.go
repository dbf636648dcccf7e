package folio

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Quoter is the engine-facing boundary of the price sources: it maps a
// (platform, symbol) pair to a current USD price, or fails with an error
// describing why the venue could not serve it.
type Quoter interface {
	Quote(platform, symbol string) (decimal.Decimal, error)
}

// Position is the aggregate holding of one symbol on one platform, derived
// from all its transactions and enriched with the live price.
type Position struct {
	Platform    string
	Symbol      string
	TotalQty    Quantity
	TotalCost   Money
	AvgCost     Money // TotalCost / TotalQty, the weighted-average cost basis
	LivePrice   Price
	MarketValue Price // LivePrice * TotalQty
	PnL         Price // MarketValue - TotalCost
}

// PnLPercent returns the profit as a percentage of cost, false when the live
// price was unavailable.
func (p Position) PnLPercent() (Percent, bool) { return p.PnL.PercentOf(p.TotalCost) }

// SymbolSummary is the cross-platform cost summary of one symbol, aggregated
// over the raw ledger regardless of platform. It carries no live price.
type SymbolSummary struct {
	Symbol    string
	TotalQty  Quantity
	TotalCost Money
	AvgCost   Money
}

// ClassSummary aggregates priced positions by asset class. MarketValue is
// unavailable if any constituent position's market value is.
type ClassSummary struct {
	Class       AssetClass
	TotalCost   Money
	MarketValue Price
	PnL         Price
}

// PnLPercent returns the class profit as a percentage of cost, false when any
// constituent market value was unavailable.
func (c ClassSummary) PnLPercent() (Percent, bool) { return c.PnL.PercentOf(c.TotalCost) }

// Report is the full derived view of a ledger snapshot. It is recomputed from
// scratch on every request and never cached.
type Report struct {
	Time      time.Time
	Positions []Position      // per (platform, symbol), lexicographic
	Symbols   []SymbolSummary // per symbol across platforms, lexicographic
	Classes   []ClassSummary  // per asset class, lexicographic
	Warnings  []string        // one per failed price fetch, venue and symbol included
}

// Empty reports whether the report was derived from an empty ledger.
func (r *Report) Empty() bool { return len(r.Positions) == 0 }

// group accumulates the raw sums for one grouping key.
type group struct {
	qty  Quantity
	cost Money
}

// NewReport derives the three report tables from a ledger snapshot, fetching
// exactly one live price per distinct (platform, symbol) pair through the
// quoter. Fetch failures are isolated: they downgrade the affected rows to
// "unavailable" and are collected as warnings, never aborting the report. An
// empty ledger short-circuits without any fetch.
func NewReport(ledger *Ledger, quoter Quoter) (*Report, error) {
	report := &Report{Time: time.Now()}
	if ledger.Empty() {
		return report, nil
	}

	type pair struct{ platform, symbol string }
	positions := make(map[pair]*group)
	symbols := make(map[string]*group)
	for tx := range ledger.Transactions() {
		k := pair{tx.Platform, tx.Symbol}
		if positions[k] == nil {
			positions[k] = &group{}
		}
		positions[k].qty = positions[k].qty.Add(tx.Quantity)
		positions[k].cost = positions[k].cost.Add(tx.Amount)

		if symbols[tx.Symbol] == nil {
			symbols[tx.Symbol] = &group{}
		}
		symbols[tx.Symbol].qty = symbols[tx.Symbol].qty.Add(tx.Quantity)
		symbols[tx.Symbol].cost = symbols[tx.Symbol].cost.Add(tx.Amount)
	}

	for k, g := range positions {
		// Per-transaction quantities are invariantly positive, so a zero total
		// can only come from corrupted data; surface it instead of dividing.
		if g.qty.IsZero() {
			return nil, fmt.Errorf("data integrity: zero total quantity for %s %s", k.platform, k.symbol)
		}
		report.Positions = append(report.Positions, Position{
			Platform:  k.platform,
			Symbol:    k.symbol,
			TotalQty:  g.qty,
			TotalCost: g.cost,
			AvgCost:   g.cost.Div(g.qty),
		})
	}
	sort.Slice(report.Positions, func(i, j int) bool {
		a, b := report.Positions[i], report.Positions[j]
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		return a.Symbol < b.Symbol
	})

	// One fetch per distinct pair, in the stable presentation order. A failed
	// fetch leaves the row's price unavailable and the report goes on.
	for i := range report.Positions {
		p := &report.Positions[i]
		value, err := quoter.Quote(p.Platform, p.Symbol)
		if err != nil {
			report.Warnings = append(report.Warnings, err.Error())
			p.LivePrice = Unavailable
		} else {
			p.LivePrice = P(value)
		}
		p.MarketValue = p.LivePrice.Mul(p.TotalQty)
		p.PnL = p.MarketValue.Sub(p.TotalCost)
	}

	for symbol, g := range symbols {
		if g.qty.IsZero() {
			return nil, fmt.Errorf("data integrity: zero total quantity for %s", symbol)
		}
		report.Symbols = append(report.Symbols, SymbolSummary{
			Symbol:    symbol,
			TotalQty:  g.qty,
			TotalCost: g.cost,
			AvgCost:   g.cost.Div(g.qty),
		})
	}
	sort.Slice(report.Symbols, func(i, j int) bool {
		return report.Symbols[i].Symbol < report.Symbols[j].Symbol
	})

	classes := make(map[AssetClass]*ClassSummary)
	for _, p := range report.Positions {
		c := classes[Classify(p.Symbol)]
		if c == nil {
			c = &ClassSummary{Class: Classify(p.Symbol), MarketValue: P(0)}
			classes[Classify(p.Symbol)] = c
		}
		c.TotalCost = c.TotalCost.Add(p.TotalCost)
		c.MarketValue = c.MarketValue.Add(p.MarketValue)
	}
	for _, c := range classes {
		c.PnL = c.MarketValue.Sub(c.TotalCost)
		report.Classes = append(report.Classes, *c)
	}
	sort.Slice(report.Classes, func(i, j int) bool {
		return report.Classes[i].Class < report.Classes[j].Class
	})

	return report, nil
}
