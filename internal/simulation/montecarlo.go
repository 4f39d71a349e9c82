package simulation

import (
	"sort"

	"decisim/internal/stats"
)

// monteCarloReport builds the dedicated risk report from an independent
// outcome batch: full distributions per metric plus tail-loss metrics over
// the profit series at the 95% level.
func monteCarloReport(outcomes []Outcome, bins int) *MonteCarloResult {
	result := &MonteCarloResult{
		Iterations:    len(outcomes),
		Distributions: make(map[string]DistributionStats),
	}
	if len(outcomes) == 0 {
		return result
	}

	series := make(map[string][]float64)
	for _, o := range outcomes {
		for k, v := range o.Metrics {
			series[k] = append(series[k], v)
		}
	}

	for k, values := range series {
		result.Distributions[k] = DistributionStats{
			Summary:   stats.Summarize(values),
			Skewness:  stats.Skewness(values),
			Kurtosis:  stats.Kurtosis(values),
			Histogram: stats.HistogramOf(values, bins),
		}
	}

	profits := series[MetricProfit]
	result.VaR95, result.CVaR95 = tailRisk(profits, 0.95)

	positive := 0
	for _, p := range profits {
		if p > 0 {
			positive++
		}
	}
	result.ProbabilityPositive = float64(positive) / float64(len(outcomes))

	return result
}

// tailRisk returns VaR and CVaR at the given confidence level. VaR is the
// loss at the (1-level) quantile of the profit distribution; CVaR is the mean
// loss beyond it. Losses are reported as positive numbers; a tail that stays
// profitable reports zero for both.
func tailRisk(profits []float64, level float64) (varAt, cvarAt float64) {
	if len(profits) == 0 {
		return 0, 0
	}

	sorted := make([]float64, len(profits))
	copy(sorted, profits)
	sort.Float64s(sorted)

	idx := int(float64(len(sorted)) * (1 - level))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}

	quantile := sorted[idx]
	if quantile >= 0 {
		return 0, 0
	}
	varAt = -quantile

	var sum float64
	count := 0
	for _, p := range sorted[:idx+1] {
		if p < 0 {
			sum += -p
			count++
		}
	}
	if count > 0 {
		cvarAt = sum / float64(count)
	}
	return varAt, cvarAt
}
