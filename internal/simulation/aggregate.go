package simulation

import (
	"math"

	"decisim/internal/stats"
)

// successOptimality is the optimality floor an outcome must clear, on top of
// feasibility, to count toward the success rate.
const successOptimality = 0.7

// Aggregate computes the batch statistics over a set of outcomes. It is a
// pure reduction: calling it twice on the same outcome list yields identical
// results. An empty batch yields zero values with Samples=0, which is how
// callers distinguish "no data" from a real zero.
func Aggregate(outcomes []Outcome) Statistics {
	agg := Statistics{
		Samples: len(outcomes),
		Metrics: make(map[string]stats.Summary),
	}
	if len(outcomes) == 0 {
		return agg
	}

	// Collect per-metric series over every key present in the batch. Metric
	// names are free-form; iteration is explicit rather than reflective.
	series := make(map[string][]float64)
	optimality := make([]float64, 0, len(outcomes))
	rois := make([]float64, 0, len(outcomes))
	successes := 0

	for _, o := range outcomes {
		for k, v := range o.Metrics {
			series[k] = append(series[k], v)
		}
		optimality = append(optimality, o.Optimality)

		cost := o.Metrics[MetricCost]
		revenue := o.Metrics[MetricRevenue]
		roi := 0.0
		if cost != 0 {
			roi = (revenue - cost) / cost
		}
		rois = append(rois, roi)

		if o.Feasible && o.Optimality > successOptimality {
			successes++
		}
	}

	for k, values := range series {
		agg.Metrics[k] = stats.Summarize(values)
	}
	agg.Optimality = stats.Summarize(optimality)
	agg.SuccessRate = float64(successes) / float64(len(outcomes))
	agg.AverageROI = stats.Mean(rois)

	// Divide-by-zero guard: the revenue spread is floored at 1 so a
	// zero-variance batch reports the raw average ROI.
	revStdDev := stats.StdDev(series[MetricRevenue])
	agg.RiskAdjustedReturn = agg.AverageROI / math.Max(1, revStdDev)

	return agg
}
