package decision

import "math"

// RateRangeForScore returns the annual interest rate band a given credit
// score qualifies for.
func RateRangeForScore(score int) RateRange {
	switch {
	case score >= 750:
		return RateRange{Min: 4.5, Max: 6.5}
	case score >= 700:
		return RateRange{Min: 6.5, Max: 8.5}
	case score >= 650:
		return RateRange{Min: 8.5, Max: 11.5}
	case score >= 600:
		return RateRange{Min: 11.5, Max: 14.5}
	default:
		return RateRange{Min: 14.5, Max: 18.5}
	}
}

// scoreMultiplier is the annual-income multiple lent at a given score.
func scoreMultiplier(score int) float64 {
	switch {
	case score >= 750:
		return 4
	case score >= 700:
		return 3.5
	case score >= 650:
		return 3
	case score >= 600:
		return 2.5
	default:
		return 2
	}
}

// shifted moves a rate band by delta percentage points, flooring at zero.
func (r RateRange) shifted(delta float64) RateRange {
	return RateRange{
		Min: roundRate(math.Max(0, r.Min+delta)),
		Max: roundRate(math.Max(0, r.Max+delta)),
	}
}

// roundRate rounds a rate to 2 decimals.
func roundRate(v float64) float64 {
	return math.Round(v*100) / 100
}
