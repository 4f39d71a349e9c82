package impact

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"decisim/internal/config"
	"decisim/internal/finance"
	"decisim/internal/scenario"
	"decisim/internal/twin"
)

// Composite score weights. The financial subscore, operational efficiency and
// the market/satisfaction blend are on a 0-100 scale before weighting.
const (
	weightFinancial   = 0.35
	weightOperational = 0.25
	weightStrategic   = 0.25
	weightRisk        = 0.15
)

// Defaults used when an option or snapshot omits a signal.
const (
	defaultRiskProbability = 0.3
	defaultRiskImpact      = 0.3
	defaultQuality         = 80.0
	defaultSatisfaction    = 70.0
	baseMarketPosition     = 50.0
)

// Analyzer scores decision options against a business snapshot.
type Analyzer struct {
	cfg config.Engine
}

// NewAnalyzer creates an analyzer with the given tunables.
func NewAnalyzer(cfg config.Engine) *Analyzer {
	if cfg.CashFlowYears <= 0 {
		cfg.CashFlowYears = 1
	}
	return &Analyzer{cfg: cfg}
}

// Analyze scores every option of a decision, ranks them, evaluates
// dependencies and constraints, and assembles recommendations and what-if
// projections. A nil snapshot or malformed decision fails fast; everything
// downstream of validation recovers locally and never aborts the analysis.
func (a *Analyzer) Analyze(snap *twin.Snapshot, dec *scenario.Decision, ctx Context) (*Analysis, error) {
	if snap == nil {
		return nil, fmt.Errorf("analyze decision: %w", ErrSnapshotRequired)
	}
	if dec == nil {
		return nil, fmt.Errorf("%w: nil decision", scenario.ErrInvalidDecision)
	}
	if err := dec.Validate(); err != nil {
		return nil, err
	}

	analysis := &Analysis{
		DecisionID: dec.ID,
		Options:    make([]OptionAnalysis, 0, len(dec.Options)),
	}

	// 1. Score each option along the four dimensions.
	for _, opt := range dec.Options {
		oa := OptionAnalysis{
			OptionID:    opt.ID,
			OptionName:  opt.Name,
			Financial:   a.financialImpact(opt),
			Operational: a.operationalImpact(snap, opt),
			Strategic:   strategicImpact(opt),
			Risk:        riskProfile(opt),
		}
		oa.Score = compositeScore(oa)
		analysis.Options = append(analysis.Options, oa)
	}

	// 2. Rank descending by score; the stable sort keeps input order on ties.
	sort.SliceStable(analysis.Options, func(i, j int) bool {
		return analysis.Options[i].Score > analysis.Options[j].Score
	})
	for i := range analysis.Options {
		analysis.Options[i].Ranking = i + 1
	}

	top := analysis.Options[0]
	topOption, _ := dec.Option(top.OptionID)

	// 3. Time-bucketed projections, dependency and constraint evaluation.
	analysis.Impacts = a.timedImpacts(snap, topOption)
	analysis.Dependencies = dependencies(snap, dec, topOption)
	analysis.Constraints = a.constraintAnalyses(snap, dec, topOption, ctx)

	// 4. Recommendations fall back to a deterministic template on any
	// generation failure; the failure never reaches the caller.
	primary, alternatives, err := recommendations(analysis.Options, dec)
	if err != nil {
		log.Warn().Err(err).Str("decision", dec.ID).Msg("Recommendation generation failed, using fallback")
		primary = fallbackRecommendation(top)
		alternatives = nil
	}
	analysis.Primary = primary
	analysis.Alternatives = alternatives
	analysis.RiskMitigations = riskMitigations(topOption)
	analysis.WhatIf = a.whatIfProjections(topOption)
	analysis.Confidence = confidenceScores(snap, dec, analysis)
	analysis.AnalyzedAt = time.Now()

	return analysis, nil
}

// financialImpact builds the fixed-horizon cash-flow view: the upfront cost
// at t=0, then the annual revenue benefit net of ongoing cost.
func (a *Analyzer) financialImpact(opt scenario.Option) FinancialImpact {
	years := a.cfg.CashFlowYears
	annualNet := opt.Benefits.Revenue - opt.Costs.Ongoing

	cashFlows := make([]float64, years+1)
	cashFlows[0] = -opt.Costs.Upfront
	for t := 1; t <= years; t++ {
		cashFlows[t] = annualNet
	}

	totalCost := opt.Costs.Upfront + opt.Costs.Ongoing*float64(years) + opt.Costs.Opportunity
	totalBenefit := opt.Benefits.Revenue * float64(years)
	irr := finance.IRR(cashFlows)

	return FinancialImpact{
		NPV:                finance.NPV(cashFlows, a.cfg.DiscountRate),
		IRR:                irr.Rate,
		IRRConverged:       irr.Converged,
		ROI:                finance.ROI(totalBenefit, totalCost),
		PaybackPeriodYears: finance.PaybackPeriod(opt.Costs.Upfront, annualNet, years),
		TotalCost:          totalCost,
		TotalBenefit:       totalBenefit,
	}
}

// operationalImpact layers the option's efficiency gain on the snapshot's
// baseline process efficiency.
func (a *Analyzer) operationalImpact(snap *twin.Snapshot, opt scenario.Option) OperationalImpact {
	baseline := snap.Metric("process_efficiency", 0)
	quality := opt.Benefits.Quality
	if quality == 0 {
		quality = defaultQuality
	}
	return OperationalImpact{
		ProcessEfficiency: baseline + opt.Benefits.Efficiency,
		Capacity:          100 + 0.5*opt.Benefits.Efficiency,
		Quality:           quality,
		TimeToMarketDays:  opt.TimeToImplementDays,
	}
}

func strategicImpact(opt scenario.Option) StrategicImpact {
	market := baseMarketPosition
	if opt.Benefits.Revenue > 0 {
		market += 10
	}
	advantage := 50.0
	if opt.Benefits.Efficiency > 0 {
		advantage = 65.0
	}
	satisfaction := opt.Benefits.Satisfaction
	if satisfaction == 0 {
		satisfaction = defaultSatisfaction
	}
	return StrategicImpact{
		MarketPosition:       market,
		CompetitiveAdvantage: advantage,
		CustomerSatisfaction: satisfaction,
		BrandValue:           0.8 * satisfaction,
	}
}

// riskProfile averages probability x impact over the declared risks; an
// option with no risks listed carries the default exposure rather than zero.
func riskProfile(opt scenario.Option) RiskProfile {
	if len(opt.Risks) == 0 {
		return RiskProfile{OverallRisk: defaultRiskProbability * defaultRiskImpact}
	}
	var sum float64
	for _, r := range opt.Risks {
		sum += r.Probability * r.Impact
	}
	risk := sum / float64(len(opt.Risks))
	if risk > 1 {
		risk = 1
	}
	return RiskProfile{OverallRisk: risk, RiskCount: len(opt.Risks)}
}

func compositeScore(oa OptionAnalysis) float64 {
	financialSubscore := (oa.Financial.ROI * 0.3) * 100
	if oa.Financial.NPV > 0 {
		financialSubscore += 0.3 * 100
	}
	strategicBlend := (oa.Strategic.MarketPosition + oa.Strategic.CustomerSatisfaction) / 2
	return weightFinancial*financialSubscore +
		weightOperational*oa.Operational.ProcessEfficiency +
		weightStrategic*strategicBlend +
		weightRisk*(1-oa.Risk.OverallRisk)*100
}

// timedImpacts projects fixed-heuristic impacts into three buckets. The
// percentages are configured exemplars, not derived from the option set.
func (a *Analyzer) timedImpacts(snap *twin.Snapshot, opt scenario.Option) []TimedImpact {
	baseRevenue := snap.Metric("revenue", 0)
	return []TimedImpact{
		{
			Timeframe:   "immediate",
			Description: "Upfront investment outflow",
			Metric:      "cash",
			Value:       -opt.Costs.Upfront,
		},
		{
			Timeframe:   "short_term",
			Description: fmt.Sprintf("Revenue bump of %.0f%%", a.cfg.ShortTermRevenueBump*100),
			Metric:      "revenue",
			Value:       baseRevenue * a.cfg.ShortTermRevenueBump,
		},
		{
			Timeframe:   "long_term",
			Description: fmt.Sprintf("Market share gain of %.1f points", a.cfg.LongTermShareGain),
			Metric:      "market_share",
			Value:       a.cfg.LongTermShareGain,
		},
	}
}

// dependencies turns prerequisites into critical dependencies and an
// over-budget resource request into an enabler dependency.
func dependencies(snap *twin.Snapshot, dec *scenario.Decision, top scenario.Option) []Dependency {
	var deps []Dependency
	for _, p := range top.Prerequisites {
		deps = append(deps, Dependency{On: p, Type: "critical", Strength: "strong"})
	}
	if dec.Resources.Budget > availableBudget(snap, "") {
		deps = append(deps, Dependency{On: "Budget Approval", Type: "enabler", Strength: "moderate"})
	}
	return deps
}

// constraintAnalyses checks the budget and time envelopes.
func (a *Analyzer) constraintAnalyses(snap *twin.Snapshot, dec *scenario.Decision, top scenario.Option, ctx Context) []ConstraintAnalysis {
	var analyses []ConstraintAnalysis

	budget := ConstraintAnalysis{
		Name:      "budget",
		Required:  dec.Resources.Budget,
		Available: availableBudget(snap, ctx.Department),
	}
	budget.Satisfied = budget.Required <= budget.Available
	if !budget.Satisfied {
		budget.Mitigation = fmt.Sprintf("Secure additional funding of %.0f or phase the rollout", budget.Required-budget.Available)
	}
	analyses = append(analyses, budget)

	horizonDays := float64(ctx.HorizonMonths) * 30
	if horizonDays > 0 {
		timeCheck := ConstraintAnalysis{
			Name:      "time",
			Required:  float64(top.TimeToImplementDays),
			Available: horizonDays,
		}
		timeCheck.Satisfied = timeCheck.Required <= timeCheck.Available
		if !timeCheck.Satisfied {
			timeCheck.Mitigation = "Reduce scope or extend the decision horizon"
		}
		analyses = append(analyses, timeCheck)
	}

	return analyses
}

// availableBudget is the named department's budget, or the organization-wide
// total when no department is given or found.
func availableBudget(snap *twin.Snapshot, department string) float64 {
	if department != "" {
		if d, ok := snap.Department(department); ok {
			return d.Budget
		}
	}
	return snap.TotalBudget()
}
