package pricing

import "math"

// Fixed parameters of the binding sigmoid pricing curve.
const (
	MinRate   = 0.10 // 10% floor
	MaxRate   = 0.20 // 20% ceiling
	Midpoint  = 60.0 // inflection point: rate(60) = 0.15
	Steepness = 0.08
)

// Rate maps a cyber security score to a binding premium rate on the logistic
// curve. Scores outside [0,100] are clamped before evaluation; that clamp is
// what keeps the rate strictly inside (MinRate, MaxRate). The curve is
// continuous and monotonically non-increasing: a better score never costs
// more.
func Rate(score float64) float64 {
	x := math.Max(0, math.Min(100, score))
	return MinRate + (MaxRate-MinRate)/(1+math.Exp(Steepness*(x-Midpoint)))
}

// Premium is the annual premium due for a rate and coverage amount. The
// coverage amount is an independent non-negative input; range validation
// belongs to the request boundary, not here.
func Premium(rate, coverageAmount float64) float64 {
	return rate * coverageAmount
}
