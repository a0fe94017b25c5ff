package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii unchanged", "foundation", "foundation"},
		{"lowercases", "Foundation", "foundation"},
		{"strips acute accents", "Café", "cafe"},
		{"strips tilde", "El Señor de los Anillos", "el senor de los anillos"},
		{"strips diaeresis", "Cigüeña", "ciguena"},
		{"mixed case and accents", "CRÓNICAS", "cronicas"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FoldAccents(tt.input))
		})
	}
}

func TestFoldAccentsIdempotent(t *testing.T) {
	folded := FoldAccents("Educación")
	assert.Equal(t, folded, FoldAccents(folded))
}
