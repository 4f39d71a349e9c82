package simulation

import (
	"fmt"

	"decisim/internal/scenario"
)

const (
	// optimality floor for an outcome to count as "successful" when mining
	// decision patterns
	insightOptimalityFloor = 0.8
	// share of successful outcomes a decision/option pair must reach to be
	// reported as an opportunity
	insightPairShare = 0.7
	// infeasible share above which a risk insight is emitted
	insightInfeasibleShare = 0.2
)

// deriveInsights mines the outcome batch for decision patterns and risk
// signals.
func deriveInsights(scn *scenario.Scenario, outcomes []Outcome) []Insight {
	if len(outcomes) == 0 {
		return nil
	}

	var insights []Insight

	// 1. Opportunity: decision/option pairs that dominate the successful
	// outcomes.
	var successful []Outcome
	for _, o := range outcomes {
		if o.Optimality > insightOptimalityFloor {
			successful = append(successful, o)
		}
	}
	if len(successful) > 0 {
		pairCounts := make(map[string]int)
		for _, o := range successful {
			for decisionID, optionID := range o.Choices {
				pairCounts[decisionID+"/"+optionID]++
			}
		}
		for pair, count := range pairCounts {
			share := float64(count) / float64(len(successful))
			if share > insightPairShare {
				insights = append(insights, Insight{
					Type:        "opportunity",
					Title:       "Dominant choice in successful outcomes",
					Description: fmt.Sprintf("Choice %s appears in %.0f%% of outcomes with optimality above %.1f", pair, share*100, insightOptimalityFloor),
					Confidence:  share,
				})
			}
		}
	}

	// 2. Risk: too many outcomes violate hard constraints.
	infeasible := 0
	for _, o := range outcomes {
		if !o.Feasible {
			infeasible++
		}
	}
	if share := float64(infeasible) / float64(len(outcomes)); share > insightInfeasibleShare {
		insights = append(insights, Insight{
			Type:        "risk",
			Title:       "High infeasibility rate",
			Description: fmt.Sprintf("%.0f%% of outcomes violate a hard constraint in scenario %s", share*100, scn.Name),
			Confidence:  share,
		})
	}

	return insights
}

// deriveRecommendations turns the aggregate statistics into strategic
// recommendations.
func deriveRecommendations(agg Statistics) []Recommendation {
	var recs []Recommendation
	if agg.SuccessRate > successOptimality {
		recs = append(recs, Recommendation{
			Action:    "proceed",
			Rationale: fmt.Sprintf("%.0f%% of simulated outcomes succeed with an average ROI of %.1f%%", agg.SuccessRate*100, agg.AverageROI*100),
			Priority:  "high",
		})
	}
	return recs
}
