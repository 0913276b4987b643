// Package unisat implements the live inscription client against the UniSat
// inscribe API.
package unisat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"pdao/backing"
	"pdao/config"
	"pdao/inscription/types"
	"pdao/proposal"
)

// Client issues one bearer-authenticated HTTP POST per mint.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	logger     *log.Logger
}

// NewClient creates a live UniSat client from the bot configuration.
func NewClient(cfg *config.BotConfig, apiKey string, logger *log.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("unisat client requires an API key")
	}

	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil || timeout <= 0 {
		logger.Printf("Warning: invalid request_timeout '%s', using default 30s", cfg.RequestTimeout)
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        cfg.InscribeURL,
		apiKey:     apiKey,
		logger:     logger,
	}, nil
}

// DryRun always reports false for the live client.
func (c *Client) DryRun() bool { return false }

// CreateMint builds the BRC-20 mint payload and submits it. On a non-2xx
// response or transport failure it returns a *types.ServiceError and no
// result.
func (c *Client) CreateMint(ctx context.Context, p *proposal.Valid) (*types.Result, error) {
	copperInfo := backing.Compute(p.AmountValue)

	content, err := json.Marshal(types.MintContent{
		P:    "brc-20",
		Op:   "mint",
		Tick: p.Token,
		Amt:  p.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mint content: %w", err)
	}

	body, err := json.Marshal(types.InscribeRequest{
		Address:     p.To,
		Content:     string(content),
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inscribe request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build inscribe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Printf("Calling UniSat API for proposal %s (%s %s)...", p.ID, p.Amount, p.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &types.ServiceError{Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.ServiceError{
			Message:    strings.TrimSpace(string(respBody)),
			StatusCode: resp.StatusCode,
		}
	}

	var out types.InscribeResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &types.ServiceError{
			Message:    fmt.Sprintf("failed to parse response body: %v", err),
			StatusCode: resp.StatusCode,
		}
	}
	if out.Txid == "" {
		return nil, &types.ServiceError{
			Message:    "response missing transaction id",
			StatusCode: resp.StatusCode,
		}
	}

	c.logger.Printf("UniSat API response received: txid=%s", out.Txid)

	return &types.Result{
		Success:       true,
		Txid:          out.Txid,
		InscriptionID: out.InscriptionID,
		CopperBacking: copperInfo,
	}, nil
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func classifyTransportError(err error) *types.ServiceError {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	return &types.ServiceError{
		Message: err.Error(),
		Timeout: timeout,
	}
}
