package sampling

import (
	"math"
	"testing"

	"decisim/internal/scenario"
)

func f64(v float64) *float64 { return &v }

func TestSample_NormalConvergence(t *testing.T) {
	const (
		n    = 10000
		mean = 100.0
		sd   = 15.0
	)

	a := scenario.Assumption{
		Variable:  "x",
		BaseValue: 0,
		Distribution: scenario.Distribution{
			Kind:   scenario.DistNormal,
			Mean:   f64(mean),
			StdDev: sd,
		},
	}

	s := New(42)
	values := make([]float64, n)
	for i := range values {
		values[i] = s.Sample(a)
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	empMean := sum / n

	var sq float64
	for _, v := range values {
		d := v - empMean
		sq += d * d
	}
	empSD := math.Sqrt(sq / n)

	if math.Abs(empMean-mean) > mean*0.05 {
		t.Errorf("Empirical mean %f not within 5%% of %f", empMean, mean)
	}
	if math.Abs(empSD-sd) > sd*0.10 {
		t.Errorf("Empirical stddev %f not within 10%% of %f", empSD, sd)
	}
}

func TestSample_NormalMeanDefaultsToBaseValue(t *testing.T) {
	a := scenario.Assumption{
		BaseValue: 50,
		Distribution: scenario.Distribution{
			Kind:   scenario.DistNormal,
			StdDev: 0,
		},
	}
	if got := New(1).Sample(a); got != 50 {
		t.Errorf("Expected base value 50 with zero stddev, got %f", got)
	}
}

func TestSample_NormalExplicitZeroMean(t *testing.T) {
	a := scenario.Assumption{
		BaseValue: 50,
		Distribution: scenario.Distribution{
			Kind:   scenario.DistNormal,
			Mean:   f64(0),
			StdDev: 0,
		},
	}
	if got := New(1).Sample(a); got != 0 {
		t.Errorf("Expected explicit zero mean to override base value, got %f", got)
	}
}

func TestSample_TriangularBounds(t *testing.T) {
	a := scenario.Assumption{
		Distribution: scenario.Distribution{
			Kind:       scenario.DistTriangular,
			Min:        10,
			Max:        20,
			MostLikely: f64(12),
		},
	}

	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Sample(a)
		if v < 10 || v > 20 {
			t.Fatalf("Triangular draw %f outside [10,20] at iteration %d", v, i)
		}
	}
}

func TestSample_TriangularModeDefaultsToBaseValue(t *testing.T) {
	a := scenario.Assumption{
		BaseValue: 5,
		Distribution: scenario.Distribution{
			Kind: scenario.DistTriangular,
			Min:  0,
			Max:  10,
		},
	}
	s := New(3)
	for i := 0; i < 1000; i++ {
		v := s.Sample(a)
		if v < 0 || v > 10 {
			t.Fatalf("Draw %f outside [0,10]", v)
		}
	}
}

func TestSample_UniformBounds(t *testing.T) {
	a := scenario.Assumption{
		Distribution: scenario.Distribution{Kind: scenario.DistUniform, Min: -5, Max: 5},
	}
	s := New(11)
	for i := 0; i < 5000; i++ {
		v := s.Sample(a)
		if v < -5 || v > 5 {
			t.Fatalf("Uniform draw %f outside [-5,5]", v)
		}
	}
}

func TestSample_ExponentialNonNegative(t *testing.T) {
	a := scenario.Assumption{
		Distribution: scenario.Distribution{Kind: scenario.DistExponential, Mean: f64(4)},
	}
	s := New(13)
	var sum float64
	const n = 10000
	for i := 0; i < n; i++ {
		v := s.Sample(a)
		if v < 0 {
			t.Fatalf("Exponential draw %f is negative", v)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean-4) > 4*0.05 {
		t.Errorf("Empirical exponential mean %f not within 5%% of 4", mean)
	}
}

func TestSample_UnknownDistributionReturnsBaseValue(t *testing.T) {
	tests := []struct {
		name string
		kind scenario.DistributionKind
	}{
		{"Missing", ""},
		{"Unknown", "lognormal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := scenario.Assumption{
				BaseValue:    42,
				Distribution: scenario.Distribution{Kind: tt.kind},
			}
			if got := New(1).Sample(a); got != 42 {
				t.Errorf("Expected base value 42, got %f", got)
			}
		})
	}
}

func TestSample_DeterministicUnderSeed(t *testing.T) {
	a := scenario.Assumption{
		Distribution: scenario.Distribution{Kind: scenario.DistNormal, Mean: f64(10), StdDev: 2},
	}

	s1 := New(99)
	s2 := New(99)
	for i := 0; i < 100; i++ {
		v1, v2 := s1.Sample(a), s2.Sample(a)
		if v1 != v2 {
			t.Fatalf("Draw %d diverged: %f vs %f", i, v1, v2)
		}
	}
}
