package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hqwei/folio/renderer"
)

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `folio tx

  Lists all transactions in the ledger, newest first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail("Error: %v", err)
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger))
	return subcommands.ExitSuccess
}
