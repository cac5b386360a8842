package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromTerminal(t *testing.T) {
	tests := []struct {
		in   string
		want []Press
	}{
		{"a", []Press{{Key: "a", Code: "KeyA"}}},
		{"A", []Press{shiftPress, {Key: "A", Code: "KeyA"}}},
		{"7", []Press{{Key: "7", Code: "Digit7"}}},
		{"&", []Press{shiftPress, {Key: "&", Code: "Digit7"}}},
		{";", []Press{{Key: ";", Code: "Semicolon"}}},
		{" ", []Press{{Key: " ", Code: "Space"}}},
		{"esc", []Press{{Key: "Escape", Code: "Escape"}}},
		{"f5", []Press{{Key: "F5", Code: "F5"}}},
		{"f12", []Press{{Key: "F12", Code: "F12"}}},
		{"ctrl+a", []Press{controlPress, {Key: "a", Code: "KeyA"}}},
		{"alt+A", []Press{altPress, shiftPress, {Key: "A", Code: "KeyA"}}},
		{"shift+tab", []Press{shiftPress, {Key: "Tab", Code: "Tab"}}},
		{"ctrl+alt+x", []Press{controlPress, altPress, {Key: "x", Code: "KeyX"}}},
		{"é", []Press{{Key: "é"}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FromTerminal(tt.in))
		})
	}
}

func TestFromTerminalUnknown(t *testing.T) {
	for _, in := range []string{"", "f13", "f0", "[paste]", "ctrl+"} {
		assert.Nil(t, FromTerminal(in), in)
	}
}
