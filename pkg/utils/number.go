package utils

import "math"

// RoundWithTwoDecimalPlace arrondit au centime, demi-centime à l'écart de zéro
// (12.345 -> 12.35). C'est la règle appliquée à tous les montants persistés.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
