package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  ESS  ", "RGE  "},
			expected: []string{"ESS", "RGE"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"ESS", "RGE", "ESS", "Bio", "RGE"},
			expected: []string{"ESS", "RGE", "Bio"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"ESS", "", "  ", "RGE"},
			expected: []string{"ESS", "RGE"},
		},
		{
			name:     "preserves case",
			input:    []string{"Ess", "ess", "ESS"},
			expected: []string{"Ess", "ess", "ESS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "", CollapseSpaces("   "))
	assert.Equal(t, "12 RUE DE LA PAIX", CollapseSpaces("  12   RUE\tDE \n LA PAIX "))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "12 RUE DE LA PAIX 75002 PARIS", JoinNonEmpty(" ", "12", "", "RUE", " DE LA PAIX ", "75002", "PARIS"))
	assert.Equal(t, "", JoinNonEmpty(" ", "", "  "))
	assert.Equal(t, "a, b", JoinNonEmpty(", ", "a", " ", "b"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "ACME", FirstNonEmpty("", "  ", " ACME ", "OTHER"))
	assert.Equal(t, "", FirstNonEmpty())
}
