// Package stats computes the descriptive statistics the simulation engine
// aggregates over Monte Carlo outcomes.
package stats

import (
	"math"
	"slices"
)

// Summary holds the descriptive statistics of one numeric series.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P5     float64 `json:"p5"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
}

// Summarize computes the summary of a series. An empty series yields the zero
// Summary; callers that must distinguish "no data" from a real zero should
// check the series length themselves.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)

	return Summary{
		Mean:   Mean(values),
		Median: median(sorted),
		StdDev: StdDev(values),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P5:     percentileSorted(sorted, 0.05),
		P25:    percentileSorted(sorted, 0.25),
		P75:    percentileSorted(sorted, 0.75),
		P95:    percentileSorted(sorted, 0.95),
	}
}

// Mean returns the arithmetic mean, zero for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Variance returns the population variance.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// median expects a sorted slice and uses the lower-middle element for even
// counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1]
}

// Percentile returns the nearest-rank percentile sorted[floor(n*p)].
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)
	return percentileSorted(sorted, p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// Correlation computes Pearson's r over two equal-length series. Length
// mismatch or zero variance in either series yields zero.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return cov / denom
}

// Elasticity is a point elasticity from the first and last values of each
// series: (dy/avg y) / (dx/avg x). It is a deliberate simplification, not a
// regression slope; treat it as a direction-and-magnitude hint.
func Elasticity(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	avgX := (x[0] + x[n-1]) / 2
	avgY := (y[0] + y[n-1]) / 2
	if avgX == 0 || avgY == 0 {
		return 0
	}

	dx := (x[n-1] - x[0]) / avgX
	dy := (y[n-1] - y[0]) / avgY
	if dx == 0 {
		return 0
	}
	return dy / dx
}

// Skewness returns the third standardized central moment, zero when the
// series has no spread.
func Skewness(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	mean := Mean(values)
	sd := StdDev(values)
	if sd == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += math.Pow((v-mean)/sd, 3)
	}
	return sum / float64(n)
}

// Kurtosis returns the excess kurtosis (fourth standardized moment minus 3).
func Kurtosis(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	mean := Mean(values)
	sd := StdDev(values)
	if sd == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += math.Pow((v-mean)/sd, 4)
	}
	return sum/float64(n) - 3
}
