package money

import "math"

// RoundCents rounds half away from zero to two decimals.
func RoundCents(v float64) float64 {
	return Round(v, 2)
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
