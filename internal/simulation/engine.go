package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"decisim/internal/config"
	"decisim/internal/sampling"
	"decisim/internal/scenario"
	"decisim/internal/twin"
)

// ErrSnapshotNotFound is the fatal precondition failure for a run without a
// business snapshot.
var ErrSnapshotNotFound = errors.New("business snapshot not found")

// Engine performs the Monte Carlo scenario simulation.
type Engine struct {
	cfg config.Engine
}

// RunOptions tune a single run.
type RunOptions struct {
	Iterations int   // <0 means use the configured default; 0 is a valid empty run
	MonteCarlo bool  // run the dedicated risk pass
	Seed       int64 // 0 means derive from the clock
}

// DefaultRunOptions returns the options for a standard run.
func DefaultRunOptions() RunOptions {
	return RunOptions{Iterations: -1, MonteCarlo: true}
}

// NewEngine creates an engine with the given tunables.
func NewEngine(cfg config.Engine) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Engine{cfg: cfg}
}

// Run executes the simulation for a scenario against a snapshot and returns
// the assembled result. The scenario's status is advanced through the
// lifecycle; on failure it is marked failed and no partial result is
// returned.
func (e *Engine) Run(ctx context.Context, scn *scenario.Scenario, snap *twin.Snapshot, opts RunOptions) (*Result, error) {
	if snap == nil {
		return nil, ErrSnapshotNotFound
	}
	if scn == nil {
		return nil, fmt.Errorf("%w: nil scenario", scenario.ErrInvalidScenario)
	}
	if err := scn.Validate(); err != nil {
		return nil, err
	}

	// The zero-value status counts as draft, matching the lifecycle rules.
	if scn.Status == "" || scn.Status == scenario.StatusDraft || scn.Status == scenario.StatusCompleted || scn.Status == scenario.StatusFailed {
		if err := scn.MarkReady(); err != nil {
			return nil, err
		}
	}
	if err := scn.Begin(); err != nil {
		return nil, err
	}

	iterations := opts.Iterations
	if iterations < 0 {
		iterations = e.cfg.Iterations
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	log.Debug().
		Str("scenario", scn.ID).
		Int("iterations", iterations).
		Bool("monte_carlo", opts.MonteCarlo).
		Msg("Simulation starting")

	outcomes, err := e.runBatch(ctx, scn, snap, iterations, seed)
	if err != nil {
		if failErr := scn.Fail(); failErr != nil {
			log.Warn().Err(failErr).Str("scenario", scn.ID).Msg("Could not mark scenario failed")
		}
		return nil, err
	}

	result := &Result{
		Iterations: iterations,
		Outcomes:   outcomes,
		Statistics: Aggregate(outcomes),
	}
	result.Insights = deriveInsights(scn, outcomes)
	result.Recommendations = deriveRecommendations(result.Statistics)
	result.Sensitivities = analyzeSensitivity(scn, outcomes)
	result.Convergence = convergence(outcomes)

	if opts.MonteCarlo {
		// Independent sampling pass with its own seed stream; outcomes from
		// the main run are deliberately not reused.
		mcOutcomes, mcErr := e.runBatch(ctx, scn, snap, e.cfg.MonteCarloTrials, seed+1)
		if mcErr != nil {
			if failErr := scn.Fail(); failErr != nil {
				log.Warn().Err(failErr).Str("scenario", scn.ID).Msg("Could not mark scenario failed")
			}
			return nil, mcErr
		}
		result.MonteCarlo = monteCarloReport(mcOutcomes, e.cfg.HistogramBins)
	}

	result.CompletedAt = time.Now()
	if err := scn.Complete(); err != nil {
		return nil, err
	}

	log.Info().
		Str("scenario", scn.ID).
		Int("iterations", iterations).
		Float64("success_rate", result.Statistics.SuccessRate).
		Float64("convergence", result.Convergence).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation completed")

	return result, nil
}

// runBatch executes one batch of independent iterations in parallel. Each
// iteration gets its own deterministic sampler and its own snapshot clone, so
// no state is shared across goroutines; outcomes are written to their own
// slice slot and returned in iteration order.
func (e *Engine) runBatch(ctx context.Context, scn *scenario.Scenario, snap *twin.Snapshot, iterations int, seed int64) ([]Outcome, error) {
	outcomes := make([]Outcome, iterations)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for i := 0; i < iterations; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			sampler := sampling.New(seed + int64(i)*0x9E3779B9)
			outcomes[i] = e.iterate(scn, snap, i, sampler)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// iterate is a pure function of (scenario, snapshot, iteration, sampler).
func (e *Engine) iterate(scn *scenario.Scenario, snap *twin.Snapshot, iteration int, sampler *sampling.Sampler) Outcome {
	out := Outcome{
		Iteration:        iteration,
		Choices:          make(map[string]string, len(scn.Decisions)),
		AssumptionValues: make(map[string]float64, len(scn.Assumptions)),
	}

	// 1. Sample decisions: a pre-selected option wins, otherwise draw
	// uniformly among the options.
	var chosen []scenario.Option
	for i := range scn.Decisions {
		d := &scn.Decisions[i]
		opt := d.Options[0]
		if d.SelectedOption != "" {
			if o, ok := d.Option(d.SelectedOption); ok {
				opt = o
			}
		} else if len(d.Options) > 1 {
			opt = d.Options[sampler.UniformChoice(len(d.Options))]
		}
		out.Choices[d.ID] = opt.ID
		chosen = append(chosen, opt)
	}

	// 2. Sample assumptions onto a private clone of the snapshot. Variables
	// that match no metric are silently ignored.
	state := snap.Clone()
	for _, a := range scn.Assumptions {
		v := sampler.Sample(a)
		out.AssumptionValues[a.Variable] = v
		if _, ok := state.Metrics[a.Variable]; ok {
			state.Metrics[a.Variable] = v
		}
	}

	// 3. Project forward with compounding nominal growth pro-rated over the
	// horizon in months.
	years := float64(scn.HorizonMonths) / 12.0
	growth := math.Pow(1+e.cfg.GrowthRate, years)
	for k, v := range state.Metrics {
		state.Metrics[k] = v * growth
	}

	// 4. Apply the chosen options' effects and derive cost/revenue/profit.
	var totalCost, addedRevenue float64
	maxImplementDays := 0
	for _, opt := range chosen {
		totalCost += opt.Costs.Upfront + opt.Costs.Ongoing*years + opt.Costs.Opportunity
		addedRevenue += opt.Benefits.Revenue
		if opt.TimeToImplementDays > maxImplementDays {
			maxImplementDays = opt.TimeToImplementDays
		}
	}

	out.Metrics = state.Metrics
	out.Metrics[MetricRevenue] = state.Metric(MetricRevenue, 0) + addedRevenue
	out.Metrics[MetricCost] = totalCost
	out.Metrics[MetricProfit] = out.Metrics[MetricRevenue] - totalCost

	// 5. Objective achievement, weighted and clamped to [0,1].
	out.Achievements = make(map[string]float64, len(scn.Objectives))
	var weightedSum, totalWeight float64
	for _, obj := range scn.Objectives {
		value := out.Metrics[obj.Metric]
		achievement := objectiveAchievement(obj, value)
		out.Achievements[obj.ID] = achievement
		weightedSum += achievement * obj.Weight
		totalWeight += obj.Weight
	}
	if totalWeight > 0 {
		out.Optimality = clamp01(weightedSum / totalWeight)
	}

	// 6. Feasibility against hard constraints only.
	out.Feasible = true
	for _, c := range scn.Constraints {
		if !c.Hard {
			continue
		}
		if constraintValue(c, out.Metrics, totalCost, maxImplementDays) > c.Limit {
			out.Feasible = false
			break
		}
	}

	return out
}

func objectiveAchievement(obj scenario.Objective, value float64) float64 {
	if obj.Target == 0 {
		// No meaningful target; treat a minimizing objective as met and a
		// maximizing one as unmet rather than dividing by zero.
		if obj.Minimize {
			return 1
		}
		return 0
	}
	if obj.Minimize {
		return clamp01(1 - value/obj.Target)
	}
	return clamp01(value / obj.Target)
}

// constraintValue picks the outcome quantity a constraint limits.
func constraintValue(c scenario.Constraint, metrics map[string]float64, totalCost float64, implementDays int) float64 {
	switch c.Type {
	case scenario.ConstraintBudget:
		return totalCost
	case scenario.ConstraintTime:
		return float64(implementDays)
	default:
		// Resource, regulatory and technical constraints limit a named
		// metric; an absent metric cannot violate the limit.
		if v, ok := metrics[c.Name]; ok {
			return v
		}
		return math.Inf(-1)
	}
}

// convergence splits the outcomes into 10 contiguous windows and reports
// 1 - variance(window mean optimality), clamped at zero. Fewer than 10
// outcomes cannot fill the windows and report zero.
func convergence(outcomes []Outcome) float64 {
	const windows = 10
	if len(outcomes) < windows {
		return 0
	}

	// Outcomes arrive in iteration order from runBatch; keep the sort as a
	// guard for callers that aggregate merged batches.
	ordered := make([]Outcome, len(outcomes))
	copy(ordered, outcomes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Iteration < ordered[j].Iteration })

	size := len(ordered) / windows
	means := make([]float64, windows)
	for w := 0; w < windows; w++ {
		start := w * size
		end := start + size
		if w == windows-1 {
			end = len(ordered)
		}
		var sum float64
		for _, o := range ordered[start:end] {
			sum += o.Optimality
		}
		means[w] = sum / float64(end-start)
	}

	mean := 0.0
	for _, m := range means {
		mean += m
	}
	mean /= windows

	variance := 0.0
	for _, m := range means {
		d := m - mean
		variance += d * d
	}
	variance /= windows

	return math.Max(0, 1-variance)
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
