// Package cmd implements the CLI application to track purchases and report
// cost basis and profit across trading venues.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hqwei/folio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&reportCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")

// loadLedger reads the app ledger file, yielding an empty ledger when the
// file does not exist yet.
func loadLedger() (*folio.Ledger, error) {
	return folio.LoadLedger(*ledgerFile)
}

// saveLedger writes the ledger back to the app ledger file.
func saveLedger(ledger *folio.Ledger) error {
	return folio.SaveLedger(*ledgerFile, ledger)
}

// printMarkdown renders markdown content to the terminal.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
