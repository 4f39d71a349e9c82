// Package finance implements the discounted cash-flow calculations used by
// the decision impact analyzer: NPV, IRR, ROI and payback period.
package finance

import "math"

const (
	irrInitialGuess = 0.1
	irrMaxIter      = 100
	irrTolerance    = 1e-5
)

// IRRResult carries the computed rate and whether Newton's method actually
// converged. A non-converged rate is still the best available estimate and is
// returned rather than an error, but callers can downgrade their confidence.
type IRRResult struct {
	Rate      float64 `json:"rate"`
	Converged bool    `json:"converged"`
}

// NPV computes the net present value of a cash-flow series at the given
// discount rate, with the first flow at t=0.
func NPV(cashFlows []float64, rate float64) float64 {
	var npv float64
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR finds the rate at which the series' NPV is zero via Newton-Raphson.
func IRR(cashFlows []float64) IRRResult {
	if len(cashFlows) == 0 {
		return IRRResult{}
	}

	rate := irrInitialGuess
	for i := 0; i < irrMaxIter; i++ {
		var npv, derivative float64
		for t, cf := range cashFlows {
			ft := float64(t)
			npv += cf / math.Pow(1+rate, ft)
			if t > 0 {
				derivative -= ft * cf / math.Pow(1+rate, ft+1)
			}
		}

		if derivative == 0 {
			return IRRResult{Rate: rate, Converged: false}
		}

		next := rate - npv/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return IRRResult{Rate: rate, Converged: false}
		}
		if math.Abs(next-rate) < irrTolerance {
			return IRRResult{Rate: next, Converged: true}
		}
		rate = next
	}

	// Best-effort estimate after the iteration cap; flagged, not raised.
	return IRRResult{Rate: rate, Converged: false}
}

// ROI is (benefit - cost) / cost, zero when cost is zero.
func ROI(totalBenefit, totalCost float64) float64 {
	if totalCost == 0 {
		return 0
	}
	return (totalBenefit - totalCost) / totalCost
}

// PaybackPeriod returns the years to recover the upfront investment from the
// annual net inflow. A zero upfront investment pays back immediately; a
// non-positive inflow never pays back and is capped at the horizon.
func PaybackPeriod(upfront, annualNet float64, horizonYears int) float64 {
	if upfront <= 0 {
		return 0
	}
	if annualNet <= 0 {
		return float64(horizonYears)
	}
	years := upfront / annualNet
	if years > float64(horizonYears) {
		return float64(horizonYears)
	}
	return years
}
