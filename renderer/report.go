// Package renderer turns derived portfolio views into markdown strings.
// Rendering is pure formatting: all numbers arrive already computed.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/hqwei/folio"
	md "github.com/nao1215/markdown"
)

const na = "N/A"

// ReportMarkdown renders the full portfolio report: per-platform positions,
// per-symbol summaries and per-class summaries, plus any fetch warnings.
// Rows keep the report's ordering, so equal ledgers render identical output.
func ReportMarkdown(r *folio.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Report on %s", r.Time.Format("2006-01-02 15:04")))

	if r.Empty() {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}

	doc.H2("Positions")
	positions := md.TableSet{
		Header: []string{"Platform", "Symbol", "Quantity", "Cost", "Avg Cost", "Price", "Value", "PnL", "PnL %"},
	}
	for _, p := range r.Positions {
		positions.Rows = append(positions.Rows, []string{
			p.Platform,
			p.Symbol,
			p.TotalQty.String(),
			p.TotalCost.String(),
			p.AvgCost.String(),
			p.LivePrice.String(),
			p.MarketValue.String(),
			p.PnL.SignedString(),
			pnlPercent(p.PnLPercent()),
		})
	}
	doc.Table(positions)

	doc.H2("Symbols")
	symbols := md.TableSet{
		Header: []string{"Symbol", "Quantity", "Cost", "Avg Cost"},
	}
	for _, s := range r.Symbols {
		symbols.Rows = append(symbols.Rows, []string{
			s.Symbol,
			s.TotalQty.String(),
			s.TotalCost.String(),
			s.AvgCost.String(),
		})
	}
	doc.Table(symbols)

	doc.H2("Asset Classes")
	classes := md.TableSet{
		Header: []string{"Class", "Cost", "Value", "PnL", "PnL %"},
	}
	for _, c := range r.Classes {
		classes.Rows = append(classes.Rows, []string{
			string(c.Class),
			c.TotalCost.String(),
			c.MarketValue.String(),
			c.PnL.SignedString(),
			pnlPercent(c.PnLPercent()),
		})
	}
	doc.Table(classes)

	if len(r.Warnings) > 0 {
		doc.H2("Warnings")
		doc.BulletList(r.Warnings...)
	}

	return doc.String()
}

func pnlPercent(p folio.Percent, ok bool) string {
	if !ok {
		return na
	}
	return p.SignedString()
}
