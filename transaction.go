package folio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssetClass is the coarse classification of a symbol, derived mechanically
// from its trailing characters.
type AssetClass string

const (
	Crypto AssetClass = "crypto"
	Stock  AssetClass = "stock"
)

// Classify returns the asset class for a symbol: trading pairs ending in "USD"
// (case-insensitive) are crypto, everything else is a stock or ETF. This is a
// fixed heuristic; no symbol metadata is consulted.
func Classify(symbol string) AssetClass {
	if strings.HasSuffix(strings.ToUpper(symbol), "USD") {
		return Crypto
	}
	return Stock
}

// Transaction is one recorded purchase: an amount of USD spent on a quantity
// of a symbol through a platform. The ledger is its sole owner; nothing else
// references a transaction by ID.
type Transaction struct {
	ID           string    // stable 8-hex identifier, assigned once
	Symbol       string    // normalized uppercase, e.g. BTCUSD or QQQM
	Platform     string    // normalized lowercase venue name
	Amount       Money     // total USD spent, always positive
	Quantity     Quantity  // units acquired, always positive
	Time         time.Time // creation time
	LastModified time.Time // zero until the first edit
}

// Class returns the derived asset class. It is recomputed from the symbol so
// an edited transaction can never carry a stale classification.
func (t Transaction) Class() AssetClass { return Classify(t.Symbol) }

// Validate checks the transaction invariants that must hold before it may
// enter the ledger.
func (t Transaction) Validate() error {
	if t.Symbol == "" {
		return errors.New("symbol is missing")
	}
	if t.Platform == "" {
		return errors.New("platform is missing")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be positive, got %s", t.Quantity)
	}
	return nil
}

// NewTransaction normalizes and validates a purchase, and assigns it a fresh
// ID and creation time.
func NewTransaction(symbol, platform string, amount Money, quantity Quantity) (Transaction, error) {
	tx := Transaction{
		ID:       newID(),
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Platform: strings.ToLower(strings.TrimSpace(platform)),
		Amount:   amount,
		Quantity: quantity,
		Time:     time.Now(),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// newID returns a short stable identifier, the first 8 hex digits of a UUID.
func newID() string {
	return uuid.NewString()[:8]
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Symbol == o.Symbol &&
		t.Platform == o.Platform &&
		t.Amount.Equal(o.Amount) &&
		t.Quantity.Equal(o.Quantity) &&
		t.Time.Equal(o.Time) &&
		t.LastModified.Equal(o.LastModified)
}
