// Package processing composes validation, backing calculation, inscription
// submission and mint logging into single-proposal and batch operations.
package processing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"pdao/backing"
	"pdao/config"
	"pdao/inscription/client"
	"pdao/inscription/types"
	"pdao/internal/messaging/producer"
	"pdao/internal/models"
	"pdao/proposal"
	"pdao/storage/store"
)

// Outcome records the result of processing one proposal file.
type Outcome struct {
	Success    bool                 `json:"success"`
	File       string               `json:"file,omitempty"`
	ProposalID string               `json:"proposalId,omitempty"`
	Entry      *models.MintLogEntry `json:"logEntry,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// BatchResult is the ordered outcome sequence of one batch run plus its
// summary counts.
type BatchResult struct {
	Outcomes   []Outcome `json:"outcomes"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
}

// Processor owns the per-proposal state machine: read, validate, submit,
// log. One Processor is constructed per run; it holds no ambient state.
type Processor struct {
	cfg       *config.BotConfig
	logger    *log.Logger
	store     store.Store
	client    client.Client
	validator *proposal.Validator
	notifier  producer.Producer
}

// New creates a Processor.
func New(cfg *config.BotConfig, logger *log.Logger, s store.Store, c client.Client, n producer.Producer) *Processor {
	return &Processor{
		cfg:       cfg,
		logger:    logger,
		store:     s,
		client:    c,
		validator: proposal.NewValidator(cfg.AddressPrefix),
		notifier:  n,
	}
}

// ProcessProposal runs the full pipeline for a single proposal file and
// returns the appended log entry. A failed live submission is also appended,
// with status failed, before the error is returned; validation failures are
// never logged.
func (p *Processor) ProcessProposal(ctx context.Context, path string) (*models.MintLogEntry, error) {
	p.logger.Printf("Processing proposal %s (dry run: %v)", path, p.client.DryRun())

	raw, err := proposal.ReadFile(path)
	if err != nil {
		return nil, err
	}

	valid, err := p.validator.Validate(raw)
	if err != nil {
		return nil, err
	}
	p.logger.Printf("Loaded proposal: %s - %s %s tokens", valid.ID, valid.Amount, valid.Token)

	result, err := p.client.CreateMint(ctx, valid)
	if err != nil {
		var svcErr *types.ServiceError
		if errors.As(err, &svcErr) {
			// Record the failed attempt for auditability. The entry carries
			// status failed, never submitted.
			entry := p.newFailedEntry(valid, svcErr)
			if appendErr := p.store.Append(entry); appendErr != nil {
				p.logger.Printf("Warning: failed to log failed mint attempt for %s: %v", valid.ID, appendErr)
			}
			p.notify(ctx, &entry)
		}
		return nil, fmt.Errorf("mint submission for proposal %s failed: %w", valid.ID, err)
	}

	entry := p.newLogEntry(valid, result)
	if err := p.store.Append(entry); err != nil {
		// The in-memory log retains the entry; surface the write failure.
		return &entry, err
	}
	p.notify(ctx, &entry)

	p.logger.Printf("Minted %s %s tokens, txid: %s", valid.Amount, valid.Token, entry.Txid)
	return &entry, nil
}

// ProcessAll processes every proposal file in the configured directory,
// sorted by filename for reproducible outcomes. Per-file failures are
// isolated; it returns an error only when the directory itself is
// unreadable or the context is cancelled mid-batch.
func (p *Processor) ProcessAll(ctx context.Context) (*BatchResult, error) {
	dirEntries, err := os.ReadDir(p.cfg.ProposalsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read proposals directory '%s': %w", p.cfg.ProposalsDir, err)
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != ".json" {
			continue
		}
		files = append(files, de.Name())
	}
	sort.Strings(files)

	p.logger.Printf("Found %d proposal files in %s", len(files), p.cfg.ProposalsDir)

	result := &BatchResult{}
	for _, file := range files {
		// Cooperative cancellation check between files; batches can run long.
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch processing cancelled after %d of %d files: %w",
				len(result.Outcomes), len(files), err)
		}

		path := filepath.Join(p.cfg.ProposalsDir, file)
		entry, err := p.ProcessProposal(ctx, path)
		if err != nil {
			p.logger.Printf("Proposal %s failed: %v", file, err)
			result.Outcomes = append(result.Outcomes, Outcome{
				Success: false,
				File:    file,
				Error:   err.Error(),
			})
			result.Failed++
			continue
		}

		result.Outcomes = append(result.Outcomes, Outcome{
			Success:    true,
			File:       file,
			ProposalID: entry.ProposalID,
			Entry:      entry,
		})
		result.Successful++
	}

	p.logger.Printf("Batch summary: successful=%d, failed=%d", result.Successful, result.Failed)
	return result, nil
}

func (p *Processor) newLogEntry(valid *proposal.Valid, result *types.Result) models.MintLogEntry {
	status := models.StatusSubmitted
	if result.DryRun {
		status = models.StatusSimulated
	}

	return models.MintLogEntry{
		ProposalID:    valid.ID,
		Token:         valid.Token,
		Amount:        valid.Amount,
		To:            valid.To,
		Txid:          result.Txid,
		InscriptionID: result.InscriptionID,
		Status:        status,
		Timestamp:     time.Now().UTC(),
		CopperBacking: result.CopperBacking,
		Treasury: models.TreasuryDelta{
			PenniesAdded: valid.AmountValue,
			CopperWeight: result.CopperBacking.CopperWeight,
			Note:         "Pre-1982 copper pennies added to treasury",
		},
	}
}

func (p *Processor) newFailedEntry(valid *proposal.Valid, svcErr *types.ServiceError) models.MintLogEntry {
	copperInfo := backing.Compute(valid.AmountValue)
	return models.MintLogEntry{
		ProposalID:    valid.ID,
		Token:         valid.Token,
		Amount:        valid.Amount,
		To:            valid.To,
		Status:        models.StatusFailed,
		Timestamp:     time.Now().UTC(),
		CopperBacking: copperInfo,
		Treasury: models.TreasuryDelta{
			Note: "No treasury change; submission failed",
		},
		Error: svcErr.Error(),
	}
}

// notify publishes a mint event; failures are logged, never propagated. A
// dropped notification must not fail a recorded mint.
func (p *Processor) notify(ctx context.Context, entry *models.MintLogEntry) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.Publish(ctx, entry); err != nil {
		p.logger.Printf("Warning: failed to publish mint event for %s: %v", entry.ProposalID, err)
	}
}
