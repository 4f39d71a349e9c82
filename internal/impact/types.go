// Package impact scores the options of a single decision across financial,
// operational, strategic and risk dimensions, ranks them, and produces
// recommendations and what-if projections.
package impact

import "time"

// Context carries the caller's analysis frame.
type Context struct {
	HorizonMonths int    `json:"horizon_months,omitempty"`
	Department    string `json:"department,omitempty"`
}

// FinancialImpact is the discounted cash-flow view of one option over the
// configured fixed-year horizon.
type FinancialImpact struct {
	NPV                float64 `json:"npv"`
	IRR                float64 `json:"irr"`
	IRRConverged       bool    `json:"irr_converged"`
	ROI                float64 `json:"roi"`
	PaybackPeriodYears float64 `json:"payback_period_years"`
	TotalCost          float64 `json:"total_cost"`
	TotalBenefit       float64 `json:"total_benefit"`
}

// OperationalImpact captures process-level effects.
type OperationalImpact struct {
	ProcessEfficiency float64 `json:"process_efficiency"`
	Capacity          float64 `json:"capacity"`
	Quality           float64 `json:"quality"`
	TimeToMarketDays  int     `json:"time_to_market_days"`
}

// StrategicImpact captures market-level effects.
type StrategicImpact struct {
	MarketPosition       float64 `json:"market_position"`
	CompetitiveAdvantage float64 `json:"competitive_advantage"`
	CustomerSatisfaction float64 `json:"customer_satisfaction"`
	BrandValue           float64 `json:"brand_value"`
}

// RiskProfile is the option's expected risk exposure in [0,1].
type RiskProfile struct {
	OverallRisk float64 `json:"overall_risk"`
	RiskCount   int     `json:"risk_count"`
}

// OptionAnalysis is the scored view of one decision option. Ranking is
// 1-based and strictly increasing with descending score; ties keep input
// order.
type OptionAnalysis struct {
	OptionID    string            `json:"option_id"`
	OptionName  string            `json:"option_name"`
	Score       float64           `json:"score"`
	Ranking     int               `json:"ranking"`
	Financial   FinancialImpact   `json:"financial"`
	Operational OperationalImpact `json:"operational"`
	Strategic   StrategicImpact   `json:"strategic"`
	Risk        RiskProfile       `json:"risk"`
}

// TimedImpact is one time-bucketed projection.
type TimedImpact struct {
	Timeframe   string  `json:"timeframe"` // immediate | short_term | long_term
	Description string  `json:"description"`
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
}

// Dependency links the decision to something it needs.
type Dependency struct {
	On       string `json:"on"`
	Type     string `json:"type"` // critical | enabler
	Strength string `json:"strength"`
}

// ConstraintAnalysis reports one resource constraint check.
type ConstraintAnalysis struct {
	Name       string  `json:"name"`
	Satisfied  bool    `json:"satisfied"`
	Required   float64 `json:"required"`
	Available  float64 `json:"available"`
	Mitigation string  `json:"mitigation,omitempty"`
}

// Recommendation is an actionable suggestion derived from the ranking.
type Recommendation struct {
	OptionID  string `json:"option_id,omitempty"`
	Action    string `json:"action"`
	Rationale string `json:"rationale"`
}

// RiskMitigation pairs a risk with a mitigation suggestion.
type RiskMitigation struct {
	Risk        string  `json:"risk"`
	Probability float64 `json:"probability"`
	Impact      float64 `json:"impact"`
	Mitigation  string  `json:"mitigation"`
}

// WhatIfImpact is one external-scenario projection with best/likely/worst
// triples and their probabilities.
type WhatIfImpact struct {
	Name        string  `json:"name"`
	Best        float64 `json:"best"`
	Likely      float64 `json:"likely"`
	Worst       float64 `json:"worst"`
	BestProb    float64 `json:"best_probability"`
	LikelyProb  float64 `json:"likely_probability"`
	WorstProb   float64 `json:"worst_probability"`
	Description string  `json:"description,omitempty"`
}

// Confidence blends the heuristic quality scores of the analysis, all in
// [0,1] and not statistically calibrated.
type Confidence struct {
	Overall       float64 `json:"overall"`
	DataQuality   float64 `json:"data_quality"`
	ModelAccuracy float64 `json:"model_accuracy"`
}

// Analysis is the complete impact analysis for one decision.
type Analysis struct {
	DecisionID      string               `json:"decision_id"`
	Options         []OptionAnalysis     `json:"options"`
	Impacts         []TimedImpact        `json:"impacts"`
	Dependencies    []Dependency         `json:"dependencies,omitempty"`
	Constraints     []ConstraintAnalysis `json:"constraints,omitempty"`
	Primary         Recommendation       `json:"primary_recommendation"`
	Alternatives    []Recommendation     `json:"alternative_recommendations,omitempty"`
	RiskMitigations []RiskMitigation     `json:"risk_mitigations,omitempty"`
	WhatIf          []WhatIfImpact       `json:"what_if"`
	Confidence      Confidence           `json:"confidence"`
	AnalyzedAt      time.Time            `json:"analyzed_at"`
}
