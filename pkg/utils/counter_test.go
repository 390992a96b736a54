package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountByOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		elements []string
		expected []ElementCount
	}{
		{
			name:     "Décompte trié par occurrences décroissantes",
			elements: []string{"A", "B", "A", "C", "B", "A"},
			expected: []ElementCount{
				{Element: "A", Count: 3},
				{Element: "B", Count: 2},
				{Element: "C", Count: 1},
			},
		},
		{
			name:     "À occurrences égales, l'ordre de première apparition est conservé",
			elements: []string{"Pinte IPA", "MOJITO", "SPRITZ", "MOJITO", "Pinte IPA"},
			expected: []ElementCount{
				{Element: "Pinte IPA", Count: 2},
				{Element: "MOJITO", Count: 2},
				{Element: "SPRITZ", Count: 1},
			},
		},
		{
			name:     "Liste vide donne un décompte vide",
			elements: []string{},
			expected: []ElementCount{},
		},
		{
			name:     "Un seul élément",
			elements: []string{"CORONA"},
			expected: []ElementCount{
				{Element: "CORONA", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CountByOccurrence(tt.elements)
			assert.Equal(t, tt.expected, result)
		})
	}
}
