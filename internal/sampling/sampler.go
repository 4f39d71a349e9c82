// Package sampling draws pseudo-random values from the parametric
// distributions an assumption may declare. Every sampler owns its seeded RNG
// so a run is reproducible and iterations never share random state.
package sampling

import (
	"math"
	"math/rand"

	"decisim/internal/scenario"
)

// Sampler draws values from assumption distributions.
type Sampler struct {
	rng *rand.Rand
}

// New creates a sampler seeded deterministically.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws one value for the assumption. Unknown or missing distribution
// kinds return the base value unchanged rather than erroring, so one odd
// assumption never aborts a long Monte Carlo run.
func (s *Sampler) Sample(a scenario.Assumption) float64 {
	d := a.Distribution
	switch d.Kind {
	case scenario.DistNormal:
		mean := a.BaseValue
		if d.Mean != nil {
			mean = *d.Mean
		}
		return mean + d.StdDev*s.standardNormal()

	case scenario.DistUniform:
		return d.Min + s.rng.Float64()*(d.Max-d.Min)

	case scenario.DistTriangular:
		mode := a.BaseValue
		if d.MostLikely != nil {
			mode = *d.MostLikely
		}
		return s.triangular(d.Min, d.Max, mode)

	case scenario.DistExponential:
		mean := a.BaseValue
		if d.Mean != nil {
			mean = *d.Mean
		}
		u := s.rng.Float64()
		if u == 0 {
			u = math.SmallestNonzeroFloat64
		}
		return -mean * math.Log(u)

	default:
		return a.BaseValue
	}
}

// UniformChoice returns a uniform index in [0, n). n must be positive.
func (s *Sampler) UniformChoice(n int) int {
	return s.rng.Intn(n)
}

// standardNormal draws N(0,1) via the Box-Muller transform.
func (s *Sampler) standardNormal() float64 {
	u1 := s.rng.Float64()
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	u2 := s.rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// triangular samples via the inverse CDF.
func (s *Sampler) triangular(min, max, mode float64) float64 {
	span := max - min
	if span <= 0 {
		return min
	}
	if mode < min {
		mode = min
	}
	if mode > max {
		mode = max
	}

	u := s.rng.Float64()
	cut := (mode - min) / span
	if u < cut {
		return min + math.Sqrt(u*span*(mode-min))
	}
	return max - math.Sqrt((1-u)*span*(max-mode))
}
