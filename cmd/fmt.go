package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `folio fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, sorts them chronologically, and writes them back in a
  canonical JSONL format with stable key order.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail("Error: could not load ledger: %v", err)
	}
	if ledger.Empty() {
		fmt.Fprintf(os.Stderr, "Warning: no transactions to format.\n")
		return subcommands.ExitSuccess
	}

	if err := saveLedger(ledger); err != nil {
		return fail("Error: could not save formatted ledger: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Formatted %d transactions in %q.\n", ledger.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
