package renderer

import (
	"bytes"
	"fmt"

	"github.com/hqwei/folio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a single transaction to a one-line string.
func Transaction(tx folio.Transaction) string {
	return fmt.Sprintf("Bought %s of %s on %s for %s",
		tx.Quantity, tx.Symbol, tx.Platform, tx.Amount)
}

// TransactionsMarkdown renders the ledger as a table, newest first, so the
// most recent purchases are on top.
func TransactionsMarkdown(ledger *folio.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if ledger.Empty() {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Time", "Symbol", "Platform", "Amount", "Quantity", "Class"},
	}
	var rows [][]string
	for tx := range ledger.Transactions() {
		rows = append(rows, []string{
			tx.ID,
			tx.Time.Format("2006-01-02 15:04"),
			tx.Symbol,
			tx.Platform,
			tx.Amount.String(),
			tx.Quantity.String(),
			string(tx.Class()),
		})
	}
	for i := len(rows) - 1; i >= 0; i-- {
		table.Rows = append(table.Rows, rows[i])
	}
	doc.Table(table)

	return doc.String()
}
