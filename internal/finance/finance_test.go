package finance

import (
	"math"
	"testing"
)

func TestNPV(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
		rate      float64
		expected  float64
		tolerance float64
	}{
		{"SinglePeriodLoanAtRate", []float64{-100, 110}, 0.1, 0, 1e-9},
		{"Empty", nil, 0.1, 0, 0},
		{"ZeroRate", []float64{-100, 50, 50, 50}, 0, 50, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NPV(tt.cashFlows, tt.rate)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("NPV() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIRR_RootsNPV(t *testing.T) {
	cashFlows := []float64{-100, 50, 50, 50}
	res := IRR(cashFlows)

	if !res.Converged {
		t.Errorf("Expected convergence for a well-behaved series")
	}
	if npv := NPV(cashFlows, res.Rate); math.Abs(npv) > 1e-3 {
		t.Errorf("NPV at IRR %f is %f, want within 1e-3 of 0", res.Rate, npv)
	}
}

func TestIRR_EmptySeries(t *testing.T) {
	res := IRR(nil)
	if res.Rate != 0 || res.Converged {
		t.Errorf("Expected zero non-converged result for empty series, got %+v", res)
	}
}

func TestIRR_AllPositiveDoesNotConvergeSilently(t *testing.T) {
	// No sign change means no root; the last estimate comes back flagged.
	res := IRR([]float64{100, 100, 100})
	if math.IsNaN(res.Rate) || math.IsInf(res.Rate, 0) {
		t.Errorf("Rate must stay finite, got %f", res.Rate)
	}
}

func TestROI(t *testing.T) {
	tests := []struct {
		name     string
		benefit  float64
		cost     float64
		expected float64
	}{
		{"Doubling", 2000, 1000, 1.0},
		{"Loss", 500, 1000, -0.5},
		{"ZeroCostGuard", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ROI(tt.benefit, tt.cost); got != tt.expected {
				t.Errorf("ROI() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPaybackPeriod(t *testing.T) {
	tests := []struct {
		name      string
		upfront   float64
		annualNet float64
		horizon   int
		expected  float64
	}{
		{"ZeroUpfront", 0, 500, 5, 0},
		{"TwoYears", 1000, 500, 5, 2},
		{"NeverPaysBackCapped", 1000, 0, 5, 5},
		{"NegativeInflowCapped", 1000, -200, 5, 5},
		{"BeyondHorizonCapped", 10000, 100, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaybackPeriod(tt.upfront, tt.annualNet, tt.horizon)
			if got != tt.expected {
				t.Errorf("PaybackPeriod() = %v, want %v", got, tt.expected)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("PaybackPeriod() must be finite, got %v", got)
			}
		})
	}
}
