package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "taco", expected: "Taco"},
		{name: "uppercase", input: "TACO", expected: "Taco"},
		{name: "mixed case", input: "TaCo", expected: "Taco"},
		{name: "already canonical", input: "Taco", expected: "Taco"},
		{name: "two words", input: "baja taco", expected: "Baja Taco"},
		{name: "two words shouting", input: "SUPER QUESADILLA", expected: "Super Quesadilla"},
		{name: "collapses inner whitespace", input: "super   burrito", expected: "Super Burrito"},
		{name: "trims surrounding whitespace", input: "  nachos\t", expected: "Nachos"},
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \t ", expected: ""},
		{name: "apostrophe stays inside the word", input: "chef's special", expected: "Chef's Special"},
		{name: "hyphen stays inside the word", input: "pico-de-gallo", expected: "Pico-de-gallo"},
		{name: "non-ascii", input: "ÉLOTE", expected: "Élote"},
		{name: "leading digit", input: "2x taco", expected: "2x Taco"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", "taco", "BAJA TACO", "  tortilla   salad ", "chef's SPECIAL", "ÉLOTE", "x", "\xff bad utf8",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", s)
	}
}
