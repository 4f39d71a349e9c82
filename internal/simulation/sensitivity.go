package simulation

import (
	"sort"

	"decisim/internal/scenario"
	"decisim/internal/stats"
)

// analyzeSensitivity relates each assumption's sampled values to every
// numeric outcome metric, and locates the critical thresholds where
// feasibility flips along the assumption's sorted range.
func analyzeSensitivity(scn *scenario.Scenario, outcomes []Outcome) []SensitivityAnalysis {
	if len(outcomes) == 0 || len(scn.Assumptions) == 0 {
		return nil
	}

	// Stable metric key set from the first outcome; every iteration produces
	// the same keys.
	metricKeys := make([]string, 0, len(outcomes[0].Metrics))
	for k := range outcomes[0].Metrics {
		metricKeys = append(metricKeys, k)
	}
	sort.Strings(metricKeys)

	analyses := make([]SensitivityAnalysis, 0, len(scn.Assumptions))
	for _, a := range scn.Assumptions {
		sa := SensitivityAnalysis{
			AssumptionID: a.ID,
			Variable:     a.Variable,
			Metrics:      make(map[string]SensitivityMetric, len(metricKeys)),
		}

		x := make([]float64, len(outcomes))
		for i, o := range outcomes {
			x[i] = o.AssumptionValues[a.Variable]
		}

		for _, key := range metricKeys {
			y := make([]float64, len(outcomes))
			for i, o := range outcomes {
				y[i] = o.Metrics[key]
			}
			sa.Metrics[key] = SensitivityMetric{
				Correlation: stats.Correlation(x, y),
				Elasticity:  stats.Elasticity(x, y),
			}
		}

		sa.CriticalThresholds = criticalThresholds(a.Variable, outcomes)
		analyses = append(analyses, sa)
	}

	return analyses
}

// criticalThresholds sorts the outcomes by the assumption's sampled value and
// records the values where feasibility flips from true to false between
// neighbors.
func criticalThresholds(variable string, outcomes []Outcome) []float64 {
	ordered := make([]Outcome, len(outcomes))
	copy(ordered, outcomes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AssumptionValues[variable] < ordered[j].AssumptionValues[variable]
	})

	var thresholds []float64
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Feasible && !ordered[i].Feasible {
			thresholds = append(thresholds, ordered[i].AssumptionValues[variable])
		}
	}
	return thresholds
}
