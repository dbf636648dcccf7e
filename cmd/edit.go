package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/hqwei/folio"
	"github.com/hqwei/folio/renderer"
	"github.com/shopspring/decimal"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	symbol   string
	platform string
	amount   string
	quantity string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded transaction" }
func (*editCmd) Usage() string {
	return `folio edit <id> [-s <symbol>] [-p <platform>] [-a <amount>] [-q <quantity>]

  Edits the transaction with the given ID. Only the provided fields change;
  the asset class is re-derived when the symbol changes.

Usage Examples:
# Correct the amount of transaction 1a2b3c4d.
$ folio edit 1a2b3c4d -a 21000
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "New symbol.")
	f.StringVar(&c.platform, "p", "", "New platform.")
	f.StringVar(&c.amount, "a", "", "New total USD amount.")
	f.StringVar(&c.quantity, "q", "", "New quantity.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	patch := folio.Patch{Symbol: c.symbol, Platform: c.platform}
	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			return fail("Error: invalid amount %q: %v", c.amount, err)
		}
		patch.Amount = folio.M(amount)
	}
	if c.quantity != "" {
		quantity, err := decimal.NewFromString(c.quantity)
		if err != nil {
			return fail("Error: invalid quantity %q: %v", c.quantity, err)
		}
		patch.Quantity = folio.Q(quantity)
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail("Error: %v", err)
	}
	tx, err := ledger.Update(id, patch)
	if err != nil {
		return fail("Error: %v", err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail("Error: %v", err)
	}

	fmt.Printf("Updated %s: %s\n", tx.ID, renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
