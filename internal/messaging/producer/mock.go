package producer

import (
	"context"
	"log"
	"sync"

	"pdao/internal/models"
)

// MockProducer records published mint events in memory. Used when no
// brokers are configured and in tests.
type MockProducer struct {
	mu      sync.Mutex
	logger  *log.Logger
	entries []*models.MintLogEntry
}

// NewMockProducer creates a MockProducer.
func NewMockProducer(logger *log.Logger) *MockProducer {
	logger.Println("[MockProducer] Mint event notification disabled (no brokers configured)")
	return &MockProducer{logger: logger}
}

// Publish records the entry and logs it.
func (m *MockProducer) Publish(ctx context.Context, entry *models.MintLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	m.logger.Printf("[MockProducer] Mint event: proposal=%s status=%s txid=%s", entry.ProposalID, entry.Status, entry.Txid)
	return nil
}

// Published returns the entries recorded so far.
func (m *MockProducer) Published() []*models.MintLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.MintLogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Close is a no-op for the mock producer.
func (m *MockProducer) Close() error { return nil }

var _ Producer = (*MockProducer)(nil)
