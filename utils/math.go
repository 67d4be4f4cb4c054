package utils

import "math"

// RoundFloat rounds to the given number of decimal places. Monetary fields
// (earnings sums, holding values) round to 2.
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
