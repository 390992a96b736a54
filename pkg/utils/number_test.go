package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Demi-centime arrondi à l'écart de zéro",
			input:    12.345,
			expected: 12.35,
		},
		{
			name:     "Arrondi à l'inférieur",
			input:    12.344,
			expected: 12.34,
		},
		{
			name:     "Zéro reste zéro",
			input:    0,
			expected: 0,
		},
		{
			name:     "Montant négatif, demi-centime à l'écart de zéro",
			input:    -12.345,
			expected: -12.35,
		},
		{
			name:     "Déjà à deux décimales",
			input:    7.5,
			expected: 7.5,
		},
		{
			name:     "Résidu flottant d'une somme",
			input:    0.1 + 0.2,
			expected: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundWithTwoDecimalPlace(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
