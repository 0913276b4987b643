package unisat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pdao/config"
	"pdao/inscription/types"
	"pdao/internal/models"
	"pdao/proposal"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testProposal() *proposal.Valid {
	return &proposal.Valid{
		Proposal: models.Proposal{
			ID: "PENNY_001", Type: "mint", Token: "PENNY", Amount: "1000",
			To: "bc1qzd25jxt7qr44punnmjwgc6eaumhhf0nf5szsph",
		},
		AmountValue: 1000,
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	cfg := &config.BotConfig{InscribeURL: url, RequestTimeout: "5s"}
	c, err := NewClient(cfg, "test-key", testLogger())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCreateMintSendsExpectedPayload(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody types.InscribeRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(types.InscribeResponse{
			Txid:          "abc123",
			InscriptionID: "abc123i0",
		})
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	result, err := c.CreateMint(context.Background(), testProposal())
	if err != nil {
		t.Fatalf("CreateMint() error = %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody.Address != "bc1qzd25jxt7qr44punnmjwgc6eaumhhf0nf5szsph" {
		t.Errorf("Address = %q", gotBody.Address)
	}
	if gotBody.ContentType != "application/json" {
		t.Errorf("body content_type = %q", gotBody.ContentType)
	}

	var content types.MintContent
	if err := json.Unmarshal([]byte(gotBody.Content), &content); err != nil {
		t.Fatalf("content is not valid JSON: %v", err)
	}
	want := types.MintContent{P: "brc-20", Op: "mint", Tick: "PENNY", Amt: "1000"}
	if content != want {
		t.Errorf("content = %+v, want %+v", content, want)
	}

	if !result.Success || result.DryRun {
		t.Errorf("result = %+v, want live success", result)
	}
	if result.Txid != "abc123" || result.InscriptionID != "abc123i0" {
		t.Errorf("result ids = %q/%q", result.Txid, result.InscriptionID)
	}
	if result.CopperBacking.CopperWeight != 2954.5 {
		t.Errorf("CopperBacking.CopperWeight = %v, want 2954.5", result.CopperBacking.CopperWeight)
	}
}

func TestCreateMintUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.CreateMint(context.Background(), testProposal())

	var svcErr *types.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("CreateMint() error = %v, want *types.ServiceError", err)
	}
	if svcErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", svcErr.StatusCode)
	}
}

func TestCreateMintMissingTxid(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.CreateMint(context.Background(), testProposal())

	var svcErr *types.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("CreateMint() error = %v, want *types.ServiceError", err)
	}
}

func TestCreateMintTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	cfg := &config.BotConfig{InscribeURL: ts.URL, RequestTimeout: "50ms"}
	c, err := NewClient(cfg, "test-key", testLogger())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.CreateMint(context.Background(), testProposal())
	var svcErr *types.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("CreateMint() error = %v, want *types.ServiceError", err)
	}
	if !svcErr.Timeout {
		t.Errorf("Timeout = false, want true: %v", svcErr)
	}
}

func TestNewClientRejectsEmptyKey(t *testing.T) {
	cfg := &config.BotConfig{InscribeURL: "http://localhost", RequestTimeout: "30s"}
	if _, err := NewClient(cfg, "", testLogger()); err == nil {
		t.Error("NewClient() with empty key: want error, got nil")
	}
}
