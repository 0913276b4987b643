package models

import (
	"time"

	"pdao/backing"
)

// MintStatus classifies the outcome recorded for one mint attempt.
type MintStatus string

const (
	StatusSubmitted MintStatus = "submitted" // live call accepted by the inscription service
	StatusSimulated MintStatus = "simulated" // dry-run, no network I/O performed
	StatusFailed    MintStatus = "failed"    // live call rejected or transport failure
)

// TreasuryDelta annotates a log entry with the treasury change it implies.
type TreasuryDelta struct {
	PenniesAdded float64 `json:"penniesAdded"`
	CopperWeight float64 `json:"copperWeight"`
	Note         string  `json:"note"`
}

// MintLogEntry is the permanent record appended once per processed proposal.
// Entries are never edited or removed after append.
type MintLogEntry struct {
	ProposalID    string          `json:"proposalId"`
	Token         string          `json:"token"`
	Amount        string          `json:"amount"`
	To            string          `json:"to"`
	Txid          string          `json:"txid"`
	InscriptionID string          `json:"inscriptionId,omitempty"`
	Status        MintStatus      `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
	CopperBacking backing.Metrics `json:"copperBacking"`
	Treasury      TreasuryDelta   `json:"pennyDAOTreasury"`
	Error         string          `json:"error,omitempty"` // populated only on failed entries
}
