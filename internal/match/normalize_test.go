package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "bonjour", "bonjour"},
		{"trims", "  salut \n", "salut"},
		{"backspace erases previous rune", "chatt\bs", "chats"},
		{"del byte erases previous rune", "cafée", "café"},
		{"leading backspace dropped", "\bchat", "chat"},
		{"combining accent composes to nfc", "café", "café"},
		{"zero width space removed", "ma​tou", "matou"},
		{"directional marks removed", "‪chien‬", "chien"},
		{"control chars removed", "fen\x01\x02être", "fenêtre"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeBackspaceOverAccent(t *testing.T) {
	// Typing "é" as e + combining acute, then backspacing, must not leave a
	// stray combining character behind.
	got := Normalize("café\b\be")
	assert.Equal(t, "cafe", got)
}
