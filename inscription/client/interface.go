package client

import (
	"context"

	"pdao/inscription/types"
	"pdao/proposal"
)

// Client defines the generic interface for inscription submissions.
// Implementations attach copper backing metrics to every result.
type Client interface {
	// CreateMint submits a BRC-20 mint inscription for a validated proposal.
	CreateMint(ctx context.Context, p *proposal.Valid) (*types.Result, error)

	// DryRun reports whether this client simulates submissions.
	DryRun() bool

	// Close releases any resources held by the client.
	Close() error
}
