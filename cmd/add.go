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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	symbol   string
	platform string
	amount   string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a purchase in the ledger" }
func (*addCmd) Usage() string {
	return `folio add -s <symbol> -p <platform> -a <amount> -q <quantity>

  Records a purchase: the total USD amount paid for a quantity of a symbol on
  a platform. Symbols ending in USD are classified as crypto, everything else
  as stock.

Usage Examples:
# Bought 0.5 BTC on coinbase for $20000.
$ folio add -s BTCUSD -p coinbase -a 20000 -q 0.5
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the purchased asset, e.g. BTCUSD or VOO.")
	f.StringVar(&c.platform, "p", "", "Platform the purchase was made on (binance, okx, coinbase, fidelity).")
	f.StringVar(&c.amount, "a", "", "Total USD amount paid.")
	f.StringVar(&c.quantity, "q", "", "Quantity of the asset purchased.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail("Error: invalid amount %q: %v", c.amount, err)
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		return fail("Error: invalid quantity %q: %v", c.quantity, err)
	}

	tx, err := folio.NewTransaction(c.symbol, c.platform, folio.M(amount), folio.Q(quantity))
	if err != nil {
		return fail("Error: invalid transaction: %v", err)
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail("Error: %v", err)
	}
	ledger.Append(tx)
	if err := saveLedger(ledger); err != nil {
		return fail("Error: %v", err)
	}

	fmt.Printf("Added %s: %s\n", tx.ID, renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
