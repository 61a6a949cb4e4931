// Package ledger holds the append-only transaction log.
package ledger

import (
	"time"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
	"github.com/google/uuid"
)

// Ledger records stock transactions in the order they were applied.
// It is not safe for concurrent use.
type Ledger struct {
	entries []model.Transaction
	now     func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Append records a delta applied to sku and returns the stored entry.
func (l *Ledger) Append(sku, quantity int, kind model.TransactionKind) model.Transaction {
	tx := model.Transaction{
		Seq:      uint64(len(l.entries)) + 1,
		ID:       uuid.NewString(),
		SKU:      sku,
		Quantity: quantity,
		Kind:     kind,
		At:       l.now().UTC(),
	}
	l.entries = append(l.entries, tx)
	return tx
}

// Entries returns a copy of the log, oldest first.
func (l *Ledger) Entries() []model.Transaction {
	out := make([]model.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.entries) }
