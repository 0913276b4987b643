package store

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pdao/backing"
	"pdao/internal/models"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testEntry(proposalID string, status models.MintStatus, amount string) models.MintLogEntry {
	return models.MintLogEntry{
		ProposalID:    proposalID,
		Token:         "PENNY",
		Amount:        amount,
		To:            "bc1qtest",
		Txid:          "txid-" + proposalID,
		Status:        status,
		Timestamp:     time.Now().UTC(),
		CopperBacking: backing.Compute(1000),
	}
}

func TestNewFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "mint_log.json"), testLogger())
	if fs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", fs.Len())
	}
}

func TestNewFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint_log.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileStore(path, testLogger())
	if fs.Len() != 0 {
		t.Errorf("corrupt log should load as empty history, got %d entries", fs.Len())
	}

	// The store must still be usable afterwards.
	if err := fs.Append(testEntry("P1", models.StatusSimulated, "1000")); err != nil {
		t.Fatalf("Append() after corrupt load: %v", err)
	}
}

func TestAppendPersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mint_log.json")
	fs := NewFileStore(path, testLogger())

	const m = 5
	for i := 0; i < m; i++ {
		e := testEntry(fmt.Sprintf("P%d", i), models.StatusSubmitted, "1000")
		if err := fs.Append(e); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}

	// A fresh store pointed at the same file sees all entries in append order.
	reloaded := NewFileStore(path, testLogger())
	entries := reloaded.Entries()
	if len(entries) != m {
		t.Fatalf("reloaded %d entries, want %d", len(entries), m)
	}
	for i, e := range entries {
		if want := fmt.Sprintf("P%d", i); e.ProposalID != want {
			t.Errorf("entries[%d].ProposalID = %q, want %q", i, e.ProposalID, want)
		}
	}
	if stats := reloaded.Stats(); stats.TotalMints != m {
		t.Errorf("Stats().TotalMints = %d, want %d", stats.TotalMints, m)
	}
}

func TestAppendAllowsDuplicateProposalIDs(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "mint_log.json"), testLogger())

	for i := 0; i < 2; i++ {
		if err := fs.Append(testEntry("P1", models.StatusSimulated, "1000")); err != nil {
			t.Fatal(err)
		}
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (reprocessing is not deduplicated)", fs.Len())
	}
}

func TestStatsCountsOnlySubmitted(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "mint_log.json"), testLogger())

	entries := []models.MintLogEntry{
		testEntry("P1", models.StatusSubmitted, "1000"),
		testEntry("P2", models.StatusSimulated, "500"),
		testEntry("P3", models.StatusSubmitted, "2000"),
		testEntry("P4", models.StatusFailed, "9000"),
	}
	for _, e := range entries {
		if err := fs.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	stats := fs.Stats()
	if stats.TotalMints != 4 {
		t.Errorf("TotalMints = %d, want 4", stats.TotalMints)
	}
	if stats.SuccessfulMints != 2 {
		t.Errorf("SuccessfulMints = %d, want 2", stats.SuccessfulMints)
	}
	if stats.TotalPenniesInTreasury != 3000 {
		t.Errorf("TotalPenniesInTreasury = %v, want 3000", stats.TotalPenniesInTreasury)
	}
	if stats.LastMint == nil {
		t.Error("LastMint = nil, want the newest entry timestamp")
	}
}

func TestAppendPersistenceFailureKeepsEntry(t *testing.T) {
	// Point the snapshot at a path whose parent does not exist.
	fs := NewFileStore(filepath.Join(t.TempDir(), "no-such-dir", "mint_log.json"), testLogger())

	err := fs.Append(testEntry("P1", models.StatusSubmitted, "1000"))
	if err == nil {
		t.Fatal("Append() error = nil, want *PersistenceError")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Append() error = %T, want *PersistenceError", err)
	}
	if fs.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (in-memory append is not rolled back)", fs.Len())
	}
}
