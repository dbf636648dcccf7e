package folio

import (
	"testing"
	"time"
)

// testTx builds a valid transaction at a deterministic time, one minute apart
// per offset, so chronological order in tests is explicit.
func testTx(t *testing.T, id, symbol, platform string, amount, quantity float64, minute int) Transaction {
	t.Helper()
	return Transaction{
		ID:       id,
		Symbol:   symbol,
		Platform: platform,
		Amount:   M(amount),
		Quantity: Q(quantity),
		Time:     time.Date(2026, 8, 1, 10, minute, 0, 0, time.UTC),
	}
}
