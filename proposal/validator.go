// Package proposal reads and validates mint proposals before any side
// effect occurs.
package proposal

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"pdao/internal/models"
)

// TypeMint is the only proposal type the pipeline executes.
const TypeMint = "mint"

// ErrorCode classifies a validation failure.
type ErrorCode string

const (
	CodeMissingFields   ErrorCode = "missing_fields"
	CodeUnsupportedType ErrorCode = "unsupported_type"
	CodeInvalidAddress  ErrorCode = "invalid_address"
	CodeInvalidAmount   ErrorCode = "invalid_amount"
)

// ValidationError reports why a proposal was rejected. Fields is populated
// only for CodeMissingFields and lists every absent field name.
type ValidationError struct {
	Code   ErrorCode
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Code == CodeMissingFields {
		return fmt.Sprintf("invalid proposal: missing required fields: %s", strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("invalid proposal: %s", e.Code)
}

// Valid is a proposal that passed all checks. Downstream code only ever
// operates on Valid, never on a partially checked record.
type Valid struct {
	models.Proposal
	AmountValue float64 // Amount parsed as a number
}

// Validator checks the structural and semantic validity of raw proposals.
type Validator struct {
	addressPrefix string
}

// NewValidator creates a Validator requiring destination addresses to start
// with the given network prefix (bc1 for mainnet bech32).
func NewValidator(addressPrefix string) *Validator {
	if addressPrefix == "" {
		addressPrefix = "bc1"
	}
	return &Validator{addressPrefix: addressPrefix}
}

// Validate runs all checks against a candidate proposal. It fails on the
// first failing category but reports every missing required field together.
func (v *Validator) Validate(p *models.Proposal) (*Valid, error) {
	required := []struct {
		name  string
		value string
	}{
		{"id", p.ID},
		{"type", p.Type},
		{"token", p.Token},
		{"amount", p.Amount},
		{"to", p.To},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Code: CodeMissingFields, Fields: missing}
	}

	if p.Type != TypeMint {
		return nil, &ValidationError{Code: CodeUnsupportedType}
	}

	if !strings.HasPrefix(p.To, v.addressPrefix) {
		return nil, &ValidationError{Code: CodeInvalidAddress}
	}

	amount, err := strconv.ParseFloat(p.Amount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, &ValidationError{Code: CodeInvalidAmount}
	}

	return &Valid{Proposal: *p, AmountValue: amount}, nil
}

// ReadFile loads a single proposal from a JSON file.
func ReadFile(path string) (*models.Proposal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proposal '%s': %w", path, err)
	}

	var p models.Proposal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse proposal '%s': %w", path, err)
	}
	return &p, nil
}
