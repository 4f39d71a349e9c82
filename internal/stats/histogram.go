package stats

// Histogram buckets a series into fixed-width bins. Bins are right-open
// except the last, which closes at Max so the maximum value is counted.
type Histogram struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Width  float64 `json:"width"`
	Counts []int   `json:"counts"`
}

// HistogramOf builds a histogram with the given bin count.
func HistogramOf(values []float64, bins int) Histogram {
	if len(values) == 0 || bins <= 0 {
		return Histogram{}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	h := Histogram{
		Min:    min,
		Max:    max,
		Counts: make([]int, bins),
	}

	if max == min {
		// Degenerate series: everything lands in the first bin.
		h.Counts[0] = len(values)
		return h
	}

	h.Width = (max - min) / float64(bins)
	for _, v := range values {
		idx := int((v - min) / h.Width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Counts[idx]++
	}
	return h
}
