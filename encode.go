package folio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Transaction, with
// stable key order for canonical output.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("time", t.Time.Format(time.RFC3339))
	w.Append("symbol", t.Symbol)
	w.Append("platform", t.Platform)
	w.Append("amount", t.Amount)
	w.Append("quantity", t.Quantity)
	if !t.LastModified.IsZero() {
		w.Append("lastModified", t.LastModified.Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// txRow is a specialized struct for decoding one JSONL line.
type txRow struct {
	ID           string          `json:"id"`
	Time         string          `json:"time"`
	Symbol       string          `json:"symbol"`
	Platform     string          `json:"platform"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     decimal.Decimal `json:"quantity"`
	LastModified string          `json:"lastModified"`
}

func (r txRow) transaction() (Transaction, error) {
	when, err := time.Parse(time.RFC3339, r.Time)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid time %q: %w", r.Time, err)
	}
	tx := Transaction{
		ID:       r.ID,
		Symbol:   r.Symbol,
		Platform: r.Platform,
		Amount:   M(r.Amount),
		Quantity: Q(r.Quantity),
		Time:     when,
	}
	if r.LastModified != "" {
		tx.LastModified, err = time.Parse(time.RFC3339, r.LastModified)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid lastModified %q: %w", r.LastModified, err)
		}
	}
	if tx.ID == "" {
		return Transaction{}, fmt.Errorf("transaction id is missing")
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a chronologically sorted Ledger. Rows
// violating the transaction invariants, including ID uniqueness, are rejected
// with the offending line;
// all bad lines are reported at once so the file can be fixed in one pass.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	var txs []Transaction
	var errs []error
	seen := make(map[string]bool)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var row txRow
		if err := json.Unmarshal(lineBytes, &row); err != nil {
			errs = append(errs, fmt.Errorf("could not decode line %q: %w", string(lineBytes), err))
			continue
		}
		tx, err := row.transaction()
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid transaction in line %q: %w", string(lineBytes), err))
			continue
		}
		// IDs must be unique: a duplicate would make edits and deletes target
		// an arbitrary one of the rows.
		if seen[tx.ID] {
			errs = append(errs, fmt.Errorf("duplicate transaction id %q in line %q", tx.ID, string(lineBytes)))
			continue
		}
		seen[tx.ID] = true
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	ledger.Append(txs...)
	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %q: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction %q: %w", tx.ID, err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, in
// chronological order with canonical key order per line.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
