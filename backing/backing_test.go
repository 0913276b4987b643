package backing

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		wantWeight float64
		wantOunces float64
	}{
		{"thousand pennies", 1000, 2954.5, 104.215},
		{"single penny", 1, 2.95, 0.104},
		{"zero", 0, 0, 0},
		{"large mint", 2100000, 6204450, 218851.852},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.amount)
			if got.TotalPennies != tt.amount {
				t.Errorf("TotalPennies = %v, want %v", got.TotalPennies, tt.amount)
			}
			if got.CopperWeight != tt.wantWeight {
				t.Errorf("CopperWeight = %v, want %v", got.CopperWeight, tt.wantWeight)
			}
			if got.CopperOunces != tt.wantOunces {
				t.Errorf("CopperOunces = %v, want %v", got.CopperOunces, tt.wantOunces)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := Compute(12345)
	b := Compute(12345)
	if a != b {
		t.Errorf("Compute is not deterministic: %+v != %+v", a, b)
	}
}

func TestComputeIntrinsicValue(t *testing.T) {
	got := Compute(1000).IntrinsicValue
	want := "Backed by 1000 pre-1982 copper pennies"
	if got != want {
		t.Errorf("IntrinsicValue = %q, want %q", got, want)
	}
}
