// Package store owns the append-only mint log: an in-memory ordered
// sequence mirrored to a JSON snapshot file.
package store

import (
	"fmt"
	"time"

	"pdao/internal/models"
)

// TreasuryStats aggregates the mint log. Totals count only entries whose
// status is submitted; simulated and failed attempts are excluded.
type TreasuryStats struct {
	TotalMints             int        `json:"totalMints"`
	SuccessfulMints        int        `json:"successfulMints"`
	TotalPenniesInTreasury float64    `json:"totalPenniesInTreasury"`
	TotalCopperWeight      float64    `json:"totalCopperWeight"`
	TotalCopperOunces      float64    `json:"totalCopperOunces"`
	LastMint               *time.Time `json:"lastMint,omitempty"`
}

// PersistenceError reports a failed log write. The in-memory append is kept
// so callers can retry persistence.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist mint log to '%s': %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is the interface for mint log access. Entries are never edited or
// removed after append.
type Store interface {
	// Entries returns a copy of the log in append order.
	Entries() []models.MintLogEntry

	// Append adds an entry to the log and persists the full sequence.
	Append(entry models.MintLogEntry) error

	// Stats derives treasury statistics from the log.
	Stats() TreasuryStats

	// Len returns the number of entries in the log.
	Len() int
}
