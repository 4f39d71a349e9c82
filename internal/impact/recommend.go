package impact

import (
	"errors"
	"fmt"

	"decisim/internal/scenario"
	"decisim/internal/twin"
)

// ErrSnapshotRequired is the fatal precondition failure for an analysis
// without a business snapshot.
var ErrSnapshotRequired = errors.New("business snapshot required")

// errNoOptions guards recommendation generation; it is recovered with the
// fallback template and never reaches the caller.
var errNoOptions = errors.New("no scored options to recommend from")

// recommendations builds the primary and alternative recommendations from
// the ranked options.
func recommendations(ranked []OptionAnalysis, dec *scenario.Decision) (Recommendation, []Recommendation, error) {
	if len(ranked) == 0 {
		return Recommendation{}, nil, errNoOptions
	}

	top := ranked[0]
	primary := Recommendation{
		OptionID: top.OptionID,
		Action:   fmt.Sprintf("Adopt option %q for decision %q", top.OptionName, dec.Name),
		Rationale: fmt.Sprintf("Highest composite score %.1f with ROI %.1f%% and overall risk %.2f",
			top.Score, top.Financial.ROI*100, top.Risk.OverallRisk),
	}

	var alternatives []Recommendation
	for _, oa := range ranked[1:] {
		alternatives = append(alternatives, Recommendation{
			OptionID: oa.OptionID,
			Action:   fmt.Sprintf("Consider option %q as a fallback", oa.OptionName),
			Rationale: fmt.Sprintf("Ranked #%d with score %.1f; viable when the primary option is blocked",
				oa.Ranking, oa.Score),
		})
	}

	return primary, alternatives, nil
}

// fallbackRecommendation is the deterministic template used when generation
// fails for any reason.
func fallbackRecommendation(top OptionAnalysis) Recommendation {
	return Recommendation{
		OptionID:  top.OptionID,
		Action:    "Review the top-ranked option manually",
		Rationale: "Automatic recommendation generation was unavailable; the ranking itself remains valid",
	}
}

// riskMitigations pairs each declared risk of the recommended option with a
// mitigation suggestion.
func riskMitigations(opt scenario.Option) []RiskMitigation {
	var mitigations []RiskMitigation
	for _, r := range opt.Risks {
		m := RiskMitigation{
			Risk:        r.Description,
			Probability: r.Probability,
			Impact:      r.Impact,
		}
		switch {
		case r.Probability*r.Impact >= 0.25:
			m.Mitigation = "High exposure: assign an owner and define a contingency plan before committing"
		case r.Probability >= 0.5:
			m.Mitigation = "Likely to occur: build the cost of occurrence into the plan"
		default:
			m.Mitigation = "Monitor and review at each milestone"
		}
		mitigations = append(mitigations, m)
	}
	return mitigations
}

// whatIfProjections returns the two fixed external-scenario exemplars scaled
// by the recommended option's revenue benefit. Deriving these from the
// scenario's own assumptions is future work.
func (a *Analyzer) whatIfProjections(opt scenario.Option) []WhatIfImpact {
	base := opt.Benefits.Revenue
	return []WhatIfImpact{
		{
			Name:        "Market Expansion",
			Best:        base * 1.5,
			Likely:      base * 1.2,
			Worst:       base * 0.9,
			BestProb:    0.2,
			LikelyProb:  0.6,
			WorstProb:   0.2,
			Description: "Favorable market conditions amplify the revenue benefit",
		},
		{
			Name:        "Economic Downturn",
			Best:        base * 0.8,
			Likely:      base * 0.5,
			Worst:       base * 0.2,
			BestProb:    0.3,
			LikelyProb:  0.5,
			WorstProb:   0.2,
			Description: "Contraction suppresses the expected benefit across the board",
		},
	}
}

// confidenceScores derives the heuristic confidence blend. All components
// live in [0,1]; none of them is statistically calibrated.
func confidenceScores(snap *twin.Snapshot, dec *scenario.Decision, analysis *Analysis) Confidence {
	c := Confidence{}

	// Data quality: metric richness plus snapshot recency.
	richness := float64(len(snap.Metrics)) / 10.0
	if richness > 0.7 {
		richness = 0.7
	}
	recency := 0.0
	if !snap.CapturedAt.IsZero() {
		recency = 0.3
	}
	c.DataQuality = richness + recency

	// Model accuracy: organizational structure present means the budget and
	// capacity heuristics have real inputs to work with.
	c.ModelAccuracy = 0.5
	if len(snap.Departments) > 0 {
		c.ModelAccuracy = 0.8
	}

	// Overall: blend of option coverage and impact coverage.
	optionCoverage := float64(len(dec.Options)) / 5.0
	if optionCoverage > 1 {
		optionCoverage = 1
	}
	impactCoverage := float64(len(analysis.Impacts)) / 3.0
	if impactCoverage > 1 {
		impactCoverage = 1
	}
	c.Overall = clamp01(0.4*optionCoverage + 0.3*impactCoverage + 0.3*c.DataQuality)

	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
