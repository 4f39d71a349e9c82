package scenario

import (
	"errors"
	"fmt"
)

// ErrInvalidScenario is the precondition failure for malformed input. It is
// raised before any sampling begins; the engines never return partial results
// alongside it.
var ErrInvalidScenario = errors.New("invalid scenario")

// ErrInvalidDecision is the precondition failure for a malformed decision
// handed to the impact analyzer.
var ErrInvalidDecision = errors.New("invalid decision")

// Validate performs the structural checks required before simulation.
func (s *Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidScenario)
	}
	if s.HorizonMonths <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidScenario, s.HorizonMonths)
	}
	for i := range s.Decisions {
		if err := s.Decisions[i].Validate(); err != nil {
			return fmt.Errorf("%w: decision %q: %v", ErrInvalidScenario, s.Decisions[i].ID, err)
		}
	}
	for _, a := range s.Assumptions {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: assumption %q: %v", ErrInvalidScenario, a.ID, err)
		}
	}
	for _, o := range s.Objectives {
		if o.Weight < 0 {
			return fmt.Errorf("%w: objective %q has negative weight", ErrInvalidScenario, o.ID)
		}
	}
	return nil
}

// Validate checks a decision has options and that any pre-selected option exists.
func (d *Decision) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDecision)
	}
	if len(d.Options) == 0 {
		return fmt.Errorf("%w: decision %q has no options", ErrInvalidDecision, d.ID)
	}
	if d.SelectedOption != "" {
		if _, ok := d.Option(d.SelectedOption); !ok {
			return fmt.Errorf("%w: decision %q pre-selects unknown option %q", ErrInvalidDecision, d.ID, d.SelectedOption)
		}
	}
	for _, o := range d.Options {
		for _, r := range o.Risks {
			if r.Probability < 0 || r.Probability > 1 {
				return fmt.Errorf("%w: option %q risk probability %.3f outside [0,1]", ErrInvalidDecision, o.ID, r.Probability)
			}
		}
	}
	return nil
}

// Validate checks an assumption's distribution parameters are usable.
func (a *Assumption) Validate() error {
	if a.Variable == "" {
		return errors.New("missing variable name")
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return fmt.Errorf("confidence %.3f outside [0,1]", a.Confidence)
	}
	d := a.Distribution
	switch d.Kind {
	case DistNormal:
		if d.StdDev < 0 {
			return fmt.Errorf("normal std_dev must be non-negative, got %.3f", d.StdDev)
		}
	case DistUniform, DistTriangular:
		if d.Max < d.Min {
			return fmt.Errorf("%s max %.3f below min %.3f", d.Kind, d.Max, d.Min)
		}
	case DistExponential:
		if d.Mean != nil && *d.Mean < 0 {
			return fmt.Errorf("exponential mean must be non-negative, got %.3f", *d.Mean)
		}
	case "":
		// No distribution declared: the sampler falls back to the base value.
	default:
		// Unknown kinds also fall back to the base value rather than erroring,
		// so a scenario authored against a newer engine still runs.
	}
	return nil
}
