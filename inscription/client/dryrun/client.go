// Package dryrun implements a simulated inscription client that performs no
// network I/O.
package dryrun

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pdao/backing"
	"pdao/inscription/types"
	"pdao/proposal"
)

// Client synthesizes successful results with unique identifiers.
type Client struct {
	logger *log.Logger
}

// NewClient creates a dry-run client.
func NewClient(logger *log.Logger) *Client {
	return &Client{logger: logger}
}

// DryRun always reports true for the simulated client.
func (c *Client) DryRun() bool { return true }

// CreateMint returns a synthetic success. Identifiers combine a millisecond
// timestamp with a uuid suffix so every call is unique even within one tick.
func (c *Client) CreateMint(ctx context.Context, p *proposal.Valid) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	copperInfo := backing.Compute(p.AmountValue)

	suffix := uuid.NewString()[:8]
	now := time.Now().UnixMilli()

	c.logger.Printf("DRY RUN - would inscribe %s %s to %s (%s)",
		p.Amount, p.Token, p.To, copperInfo.IntrinsicValue)

	return &types.Result{
		Success:       true,
		DryRun:        true,
		Txid:          fmt.Sprintf("dry-run-%d-%s", now, suffix),
		InscriptionID: fmt.Sprintf("dry-run-inscription-%d-%s", now, suffix),
		CopperBacking: copperInfo,
	}, nil
}

// Close is a no-op for the dry-run client.
func (c *Client) Close() error { return nil }
