package simulation

import (
	"testing"

	"decisim/internal/scenario"
)

func TestAnalyzeSensitivity(t *testing.T) {
	scn := &scenario.Scenario{
		Assumptions: []scenario.Assumption{
			{ID: "a1", Variable: "x"},
		},
	}

	// Revenue rises linearly with x; feasibility flips once x crosses 2.5.
	outcomes := make([]Outcome, 4)
	for i := range outcomes {
		x := float64(i)
		outcomes[i] = Outcome{
			Iteration:        i,
			AssumptionValues: map[string]float64{"x": x},
			Metrics:          map[string]float64{MetricRevenue: 100 * x},
			Feasible:         x < 2.5,
		}
	}

	analyses := analyzeSensitivity(scn, outcomes)
	if len(analyses) != 1 {
		t.Fatalf("Expected 1 analysis, got %d", len(analyses))
	}

	sa := analyses[0]
	if sa.Variable != "x" {
		t.Errorf("Variable = %s, want x", sa.Variable)
	}

	m, ok := sa.Metrics[MetricRevenue]
	if !ok {
		t.Fatal("Expected a revenue sensitivity entry")
	}
	if m.Correlation < 0.999 {
		t.Errorf("Correlation = %f, want ~1 for a linear relationship", m.Correlation)
	}

	if len(sa.CriticalThresholds) != 1 {
		t.Fatalf("Expected 1 critical threshold, got %v", sa.CriticalThresholds)
	}
	if sa.CriticalThresholds[0] != 3 {
		t.Errorf("Threshold = %f, want 3 (first infeasible neighbor)", sa.CriticalThresholds[0])
	}
}

func TestAnalyzeSensitivity_EmptyInputs(t *testing.T) {
	if got := analyzeSensitivity(&scenario.Scenario{}, nil); got != nil {
		t.Errorf("Expected nil for empty inputs, got %v", got)
	}
}

func TestTailRisk(t *testing.T) {
	// 20 profits, the worst being losses.
	profits := make([]float64, 20)
	for i := range profits {
		profits[i] = float64(i-2) * 100 // -200, -100, 0, ..., 1700
	}

	varAt, cvarAt := tailRisk(profits, 0.95)
	// idx = floor(20*0.05) = 1 -> sorted[1] = -100.
	if varAt != 100 {
		t.Errorf("VaR95 = %f, want 100", varAt)
	}
	// Mean loss over {-200, -100}.
	if cvarAt != 150 {
		t.Errorf("CVaR95 = %f, want 150", cvarAt)
	}
}

func TestTailRisk_ProfitableTail(t *testing.T) {
	profits := []float64{100, 200, 300, 400}
	varAt, cvarAt := tailRisk(profits, 0.95)
	if varAt != 0 || cvarAt != 0 {
		t.Errorf("Profitable tail must report zero risk, got %f/%f", varAt, cvarAt)
	}
}
