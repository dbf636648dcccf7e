package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a recorded transaction" }
func (*deleteCmd) Usage() string {
	return `folio delete <id>

  Deletes the transaction with the given ID from the ledger.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	ledger, err := loadLedger()
	if err != nil {
		return fail("Error: %v", err)
	}
	if err := ledger.Delete(id); err != nil {
		return fail("Error: %v", err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail("Error: %v", err)
	}

	fmt.Printf("Deleted transaction %s\n", id)
	return subcommands.ExitSuccess
}
