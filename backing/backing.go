// Package backing derives the copper-backing metrics attached to every mint
// for transparency. Values are descriptive only; nothing verifies them
// against real collateral.
package backing

import (
	"fmt"
	"math"
)

const (
	// PennyWeightGrams is the weight of one pre-1982 US penny.
	PennyWeightGrams = 3.11
	// CopperRatio is the copper content of a pre-1982 penny.
	CopperRatio = 0.95
	// GramsPerTroyOunce converts grams to troy ounces.
	GramsPerTroyOunce = 28.35
)

// Metrics holds the derived backing values for a mint amount.
type Metrics struct {
	TotalPennies   float64 `json:"totalPennies"`
	CopperWeight   float64 `json:"copperWeight"` // grams, rounded to 2 decimals
	CopperOunces   float64 `json:"copperOunces"` // troy ounces, rounded to 3 decimals
	IntrinsicValue string  `json:"intrinsicValue"`
}

// Compute derives backing metrics from a token amount. Pure and
// deterministic; safe to call from anywhere.
func Compute(amount float64) Metrics {
	copperWeight := amount * PennyWeightGrams * CopperRatio
	copperOunces := copperWeight / GramsPerTroyOunce

	return Metrics{
		TotalPennies:   amount,
		CopperWeight:   round2(copperWeight),
		CopperOunces:   round3(copperOunces),
		IntrinsicValue: fmt.Sprintf("Backed by %v pre-1982 copper pennies", amount),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
