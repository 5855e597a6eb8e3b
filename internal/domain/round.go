package domain

import "math"

// Round1 rounds v to one decimal place, halves away from zero
// (57.142857 -> 57.1, 78.125 -> 78.1, 0.25 -> 0.3).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Ratio returns num/den*100 rounded to one decimal, or 0 when den <= 0.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return Round1(num / den * 100)
}
