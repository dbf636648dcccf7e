package folio

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when an edit or delete references an unknown
// transaction identifier. The ledger is left unchanged.
var ErrNotFound = errors.New("transaction not found")

// Ledger holds all recorded transactions, the system of record.
//
// In a Ledger transactions are always in chronological order.
type Ledger struct {
	transactions []Transaction
	index        map[string]int // position by transaction ID
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		index:        make(map[string]int),
	}
}

func (l *Ledger) Len() int    { return len(l.transactions) }
func (l *Ledger) Empty() bool { return len(l.transactions) == 0 }

// Append appends already-validated transactions and maintains the
// chronological order. It is the low-level entry point used by the decoder;
// callers recording new purchases should use Add.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Add validates, normalizes and records a new purchase, returning the stored
// transaction with its assigned ID.
func (l *Ledger) Add(symbol, platform string, amount Money, quantity Quantity) (Transaction, error) {
	tx, err := NewTransaction(symbol, platform, amount, quantity)
	if err != nil {
		return Transaction{}, err
	}
	l.Append(tx)
	return tx, nil
}

// Get returns the transaction with the given ID.
func (l *Ledger) Get(id string) (Transaction, bool) {
	i, ok := l.index[id]
	if !ok {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

// Patch describes a partial update to a transaction. Zero-valued fields are
// left unchanged; amount and quantity cannot legitimately be zero, so the
// zero value is unambiguous.
type Patch struct {
	Symbol   string
	Platform string
	Amount   Money
	Quantity Quantity
}

// Update applies a patch to the transaction with the given ID, re-deriving
// the asset class when the symbol changes and stamping LastModified. It
// returns ErrNotFound for an unknown ID, and rejects patches that would
// violate the transaction invariants, leaving the ledger unchanged.
func (l *Ledger) Update(id string, p Patch) (Transaction, error) {
	i, ok := l.index[id]
	if !ok {
		return Transaction{}, fmt.Errorf("cannot update %q: %w", id, ErrNotFound)
	}
	tx := l.transactions[i]
	if p.Symbol != "" {
		tx.Symbol = strings.ToUpper(strings.TrimSpace(p.Symbol))
	}
	if p.Platform != "" {
		tx.Platform = strings.ToLower(strings.TrimSpace(p.Platform))
	}
	if !p.Amount.IsZero() {
		tx.Amount = p.Amount
	}
	if !p.Quantity.IsZero() {
		tx.Quantity = p.Quantity
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid update for %q: %w", id, err)
	}
	tx.LastModified = time.Now()
	l.transactions[i] = tx
	return tx, nil
}

// Delete removes the transaction with the given ID, or returns ErrNotFound.
func (l *Ledger) Delete(id string) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("cannot delete %q: %w", id, ErrNotFound)
	}
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	l.reindex()
	return nil
}

// Transactions returns an iterator over all transactions in chronological
// order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by creation time. The sort is stable, meaning
// transactions recorded at the same instant keep their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Time.Before(l.transactions[j].Time)
	})
	l.reindex()
}

func (l *Ledger) reindex() {
	l.index = make(map[string]int, len(l.transactions))
	for i, tx := range l.transactions {
		l.index[tx.ID] = i
	}
}
