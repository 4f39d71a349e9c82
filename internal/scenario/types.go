// Package scenario defines the what-if scenario aggregate: decisions with
// their options, uncertain assumptions, constraints, and objectives, plus the
// lifecycle and validation rules the engines rely on.
package scenario

// Type classifies what kind of business question a scenario asks.
type Type string

const (
	TypeStrategic   Type = "strategic"
	TypeOperational Type = "operational"
	TypeFinancial   Type = "financial"
	TypeMarket      Type = "market"
	TypeRisk        Type = "risk"
	TypeGrowth      Type = "growth"
)

// Status is the lifecycle state of a scenario.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReady     Status = "ready"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// DistributionKind names the supported probability distributions.
type DistributionKind string

const (
	DistNormal      DistributionKind = "normal"
	DistUniform     DistributionKind = "uniform"
	DistTriangular  DistributionKind = "triangular"
	DistExponential DistributionKind = "exponential"
)

// ConstraintType classifies what a constraint limits.
type ConstraintType string

const (
	ConstraintBudget     ConstraintType = "budget"
	ConstraintResource   ConstraintType = "resource"
	ConstraintTime       ConstraintType = "time"
	ConstraintRegulatory ConstraintType = "regulatory"
	ConstraintTechnical  ConstraintType = "technical"
)

// Scenario bundles the decisions, assumptions, constraints and objectives of
// one what-if question. It owns at most one simulation result, replaced on
// each re-run; the result type lives in internal/simulation to keep this
// package free of engine imports, so the owning pair is store.Record.
type Scenario struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          Type         `json:"type"`
	HorizonMonths int          `json:"horizon_months"`
	Decisions     []Decision   `json:"decisions"`
	Assumptions   []Assumption `json:"assumptions"`
	Constraints   []Constraint `json:"constraints"`
	Objectives    []Objective  `json:"objectives"`
	Status        Status       `json:"status"`
}

// Window bounds when a decision can be taken, in months from now.
type Window struct {
	EarliestMonth int `json:"earliest_month"`
	LatestMonth   int `json:"latest_month"`
}

// Resources is the envelope a decision may consume.
type Resources struct {
	Budget    float64 `json:"budget"`
	Headcount int     `json:"headcount"`
	TimeDays  int     `json:"time_days"`
}

// Decision is a named choice point with mutually exclusive options.
// When SelectedOption is empty the simulator samples uniformly per iteration.
type Decision struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	DependsOn      []string  `json:"depends_on,omitempty"`
	Window         Window    `json:"window"`
	Resources      Resources `json:"resources"`
	Options        []Option  `json:"options"`
	SelectedOption string    `json:"selected_option,omitempty"`
}

// Costs breaks down what an option costs.
type Costs struct {
	Upfront     float64 `json:"upfront"`
	Ongoing     float64 `json:"ongoing"`
	Opportunity float64 `json:"opportunity"`
}

// Total is the full cost over the given horizon in years.
func (c Costs) Total(years int) float64 {
	return c.Upfront + c.Ongoing*float64(years) + c.Opportunity
}

// Benefits breaks down what an option is expected to yield. All fields are
// optional and default to zero.
type Benefits struct {
	Revenue      float64 `json:"revenue,omitempty"`
	Efficiency   float64 `json:"efficiency,omitempty"`
	Quality      float64 `json:"quality,omitempty"`
	Satisfaction float64 `json:"satisfaction,omitempty"`
}

// Risk is a discrete risk attached to an option.
type Risk struct {
	Probability float64 `json:"probability"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description,omitempty"`
}

// Option is one mutually exclusive alternative of a decision.
type Option struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Costs               Costs    `json:"costs"`
	Benefits            Benefits `json:"benefits"`
	Risks               []Risk   `json:"risks,omitempty"`
	Prerequisites       []string `json:"prerequisites,omitempty"`
	TimeToImplementDays int      `json:"time_to_implement_days"`
}

// Distribution declares the shape of an uncertain variable. Mean and
// MostLikely are pointers because absence means "default to the assumption's
// base value", which an explicit zero must not trigger.
type Distribution struct {
	Kind       DistributionKind `json:"kind"`
	Mean       *float64         `json:"mean,omitempty"`
	StdDev     float64          `json:"std_dev,omitempty"`
	Min        float64          `json:"min,omitempty"`
	Max        float64          `json:"max,omitempty"`
	MostLikely *float64         `json:"most_likely,omitempty"`
}

// Assumption is an uncertain numeric input. Variable names the snapshot
// metric the sampled value is applied to; unmatched variables are ignored by
// the simulator.
type Assumption struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Variable     string       `json:"variable"`
	BaseValue    float64      `json:"base_value"`
	Distribution Distribution `json:"distribution"`
	Confidence   float64      `json:"confidence"`
}

// Constraint is a named limit. Hard constraints exclude an outcome from
// feasibility when violated; soft constraints never do.
type Constraint struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  ConstraintType `json:"type"`
	Limit float64        `json:"limit"`
	Unit  string         `json:"unit,omitempty"`
	Hard  bool           `json:"hard"`
}

// Objective targets a metric. Achievement is computed relative to Target,
// capped to [0,1], then weighted.
type Objective struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Metric   string  `json:"metric"`
	Target   float64 `json:"target"`
	Weight   float64 `json:"weight"`
	Minimize bool    `json:"minimize,omitempty"`
}

// Option finds a decision option by ID.
func (d *Decision) Option(id string) (Option, bool) {
	for _, o := range d.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
