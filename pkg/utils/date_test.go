package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Date valide",
			input:    "2026-03-14",
			expected: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Chaîne vide, date zéro sans erreur",
			input:    "",
			expected: time.Time{},
		},
		{
			name:     "Format français rejeté",
			input:    "14/03/2026",
			hasError: true,
		},
		{
			name:     "Horodatage complet rejeté",
			input:    "2026-03-14 15:00:00",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				assert.Nil(t, date)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *date)
		})
	}
}

func TestPrettyJson(t *testing.T) {
	t.Run("Structure indentée", func(t *testing.T) {
		out := PrettyJson(map[string]int{"quantite": 3})
		assert.Equal(t, "{\n\t\"quantite\": 3\n}", out)
	})

	t.Run("JSON brut déjà sérialisé", func(t *testing.T) {
		out := PrettyJson([]byte(`{"libre":true}`))
		assert.Equal(t, "{\n\t\"libre\": true\n}", out)
	})

	t.Run("Octets non JSON rendus tels quels", func(t *testing.T) {
		out := PrettyJson([]byte("pas du json"))
		assert.Equal(t, "pas du json", out)
	})
}
