package producer

import (
	"context"

	"pdao/internal/models"
)

// Producer defines the interface for publishing mint events to DAO members
type Producer interface {
	// Publish sends a single mint log entry to the configured topic
	Publish(ctx context.Context, entry *models.MintLogEntry) error

	// Close closes the producer connection
	Close() error
}
