package types

import (
	"fmt"

	"pdao/backing"
)

// MintContent is the BRC-20 inscription content encoded on-chain.
type MintContent struct {
	P    string `json:"p"`
	Op   string `json:"op"`
	Tick string `json:"tick"`
	Amt  string `json:"amt"`
}

// InscribeRequest is the wire payload POSTed to the inscription service.
type InscribeRequest struct {
	Address     string `json:"address"`
	Content     string `json:"content"` // serialized MintContent
	ContentType string `json:"content_type"`
}

// InscribeResponse is the subset of the service response the pipeline
// consumes: a transaction id and, for inscriptions, an inscription id.
type InscribeResponse struct {
	Txid          string `json:"txid"`
	InscriptionID string `json:"inscriptionId"`
}

// Result is the outcome of one submission attempt. Ephemeral; only stored
// as input to a mint log entry.
type Result struct {
	Success       bool
	Txid          string
	InscriptionID string
	DryRun        bool
	CopperBacking backing.Metrics
}

// ServiceError reports an upstream inscription service failure. A failed
// live call must never be recorded as submitted.
type ServiceError struct {
	Message    string
	StatusCode int  // upstream HTTP status, 0 for transport failures
	Timeout    bool // true when the request exceeded its deadline
}

func (e *ServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("inscription service error (status %d): %s", e.StatusCode, e.Message)
	}
	if e.Timeout {
		return fmt.Sprintf("inscription service timeout: %s", e.Message)
	}
	return fmt.Sprintf("inscription service error: %s", e.Message)
}
