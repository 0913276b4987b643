package store

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"strconv"
	"sync"

	"pdao/backing"
	"pdao/internal/models"
)

// FileStore keeps the mint log in memory and rewrites the whole JSON
// snapshot on every append. The mutex serializes appends when the store is
// shared by concurrent HTTP handlers.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries []models.MintLogEntry
	logger  *log.Logger
}

// NewFileStore loads the mint log from path. A missing or unparsable file
// is treated as empty history, not a fatal error.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	fs := &FileStore{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Println("Starting with empty mint log")
		return fs
	}

	var entries []models.MintLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Printf("Warning: mint log '%s' is unreadable, starting with empty history: %v", path, err)
		return fs
	}

	fs.entries = entries
	logger.Printf("Loaded %d previous mint operations", len(entries))
	return fs
}

// Entries returns a copy of the log in append order.
func (fs *FileStore) Entries() []models.MintLogEntry {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	out := make([]models.MintLogEntry, len(fs.entries))
	copy(out, fs.entries)
	return out
}

// Len returns the number of entries in the log.
func (fs *FileStore) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.entries)
}

// Append adds the entry to the in-memory sequence and persists the full
// snapshot. A persistence failure is returned as *PersistenceError but the
// in-memory append is not rolled back.
func (fs *FileStore) Append(entry models.MintLogEntry) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.entries = append(fs.entries, entry)

	data, err := json.MarshalIndent(fs.entries, "", "  ")
	if err != nil {
		return &PersistenceError{Path: fs.path, Err: err}
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return &PersistenceError{Path: fs.path, Err: err}
	}

	fs.logger.Printf("Mint log saved with %d entries", len(fs.entries))
	return nil
}

// Stats derives treasury statistics by scanning the log.
func (fs *FileStore) Stats() TreasuryStats {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stats := TreasuryStats{TotalMints: len(fs.entries)}

	var totalCopper float64
	for _, e := range fs.entries {
		if e.Status != models.StatusSubmitted {
			continue
		}
		stats.SuccessfulMints++
		if amount, err := strconv.ParseFloat(e.Amount, 64); err == nil {
			stats.TotalPenniesInTreasury += amount
		}
		totalCopper += e.CopperBacking.CopperWeight
	}

	stats.TotalCopperWeight = math.Round(totalCopper*100) / 100
	stats.TotalCopperOunces = math.Round(totalCopper/backing.GramsPerTroyOunce*1000) / 1000

	if n := len(fs.entries); n > 0 {
		ts := fs.entries[n-1].Timestamp
		stats.LastMint = &ts
	}
	return stats
}

var _ Store = (*FileStore)(nil)
