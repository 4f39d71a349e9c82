// Package simulation runs the Monte Carlo scenario engine: it samples
// decisions and assumptions, projects the business state over the scenario
// horizon, and aggregates the outcomes into statistics, insights,
// recommendations and sensitivity analyses.
package simulation

import (
	"time"

	"decisim/internal/stats"
)

// Derived metric keys attached to every outcome alongside the projected
// snapshot metrics.
const (
	MetricRevenue = "revenue"
	MetricCost    = "cost"
	MetricProfit  = "profit"
)

// Outcome is one Monte Carlo draw. It is immutable once produced; the
// outcome list of a run is never mutated after aggregation.
type Outcome struct {
	Iteration        int                `json:"iteration"`
	Choices          map[string]string  `json:"choices"`           // decision id -> option id
	AssumptionValues map[string]float64 `json:"assumption_values"` // variable -> sampled value
	Metrics          map[string]float64 `json:"metrics"`           // projected business metrics
	Achievements     map[string]float64 `json:"achievements"`      // objective id -> achievement in [0,1]
	Feasible         bool               `json:"feasible"`
	Optimality       float64            `json:"optimality"`
}

// Statistics aggregates a batch of outcomes. Samples distinguishes a real
// zero from the degenerate empty-batch aggregate.
type Statistics struct {
	Samples            int                      `json:"samples"`
	SuccessRate        float64                  `json:"success_rate"`
	AverageROI         float64                  `json:"average_roi"`
	RiskAdjustedReturn float64                  `json:"risk_adjusted_return"`
	Optimality         stats.Summary            `json:"optimality"`
	Metrics            map[string]stats.Summary `json:"metrics"`
}

// Insight is a derived observation about the outcome batch.
type Insight struct {
	Type        string  `json:"type"` // opportunity | risk
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Recommendation is a strategic suggestion derived from the aggregate.
type Recommendation struct {
	Action    string `json:"action"`
	Rationale string `json:"rationale"`
	Priority  string `json:"priority"`
}

// SensitivityMetric relates one assumption to one outcome metric.
type SensitivityMetric struct {
	Correlation float64 `json:"correlation"`
	Elasticity  float64 `json:"elasticity"`
}

// SensitivityAnalysis captures how one assumption drives the outcome metrics
// and where feasibility flips along its sampled range.
type SensitivityAnalysis struct {
	AssumptionID       string                       `json:"assumption_id"`
	Variable           string                       `json:"variable"`
	Metrics            map[string]SensitivityMetric `json:"metrics"`
	CriticalThresholds []float64                    `json:"critical_thresholds,omitempty"`
}

// DistributionStats extends the summary with shape moments and a histogram.
type DistributionStats struct {
	stats.Summary
	Skewness  float64         `json:"skewness"`
	Kurtosis  float64         `json:"kurtosis"`
	Histogram stats.Histogram `json:"histogram"`
}

// MonteCarloResult is the dedicated larger-sample risk report.
type MonteCarloResult struct {
	Iterations          int                          `json:"iterations"`
	VaR95               float64                      `json:"var_95"`
	CVaR95              float64                      `json:"cvar_95"`
	ProbabilityPositive float64                      `json:"probability_positive"`
	Distributions       map[string]DistributionStats `json:"distributions"`
}

// Result is the complete output of one simulation run, owned by exactly one
// scenario and replaced on re-run. It is JSON-serializable with no cycles.
type Result struct {
	Iterations      int                   `json:"iterations"`
	Convergence     float64               `json:"convergence"`
	Outcomes        []Outcome             `json:"outcomes"`
	Statistics      Statistics            `json:"statistics"`
	Insights        []Insight             `json:"insights,omitempty"`
	Recommendations []Recommendation      `json:"recommendations,omitempty"`
	Sensitivities   []SensitivityAnalysis `json:"sensitivities,omitempty"`
	MonteCarlo      *MonteCarloResult     `json:"monte_carlo,omitempty"`
	CompletedAt     time.Time             `json:"completed_at"`
}
