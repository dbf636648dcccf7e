package cmd

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/hqwei/folio"
	"github.com/hqwei/folio/pricing"
	"github.com/hqwei/folio/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display positions, cost basis and live profit" }
func (*reportCmd) Usage() string {
	return `folio report

  Fetches current prices and displays the portfolio: per-platform positions
  with live profit, per-symbol cost summaries and per-class summaries. A
  venue that cannot be reached downgrades its rows to N/A and is listed as a
  warning; the report always completes.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail("Error: %v", err)
	}

	report, err := folio.NewReport(ledger, pricing.NewClient())
	if err != nil {
		return fail("Error: %v", err)
	}
	for _, w := range report.Warnings {
		log.Printf("warning: could not fetch price: %s", w)
	}

	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
