package keyboard

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	shiftPress   = Press{Key: "Shift", Code: "ShiftLeft"}
	controlPress = Press{Key: "Control", Code: "ControlLeft"}
	altPress     = Press{Key: "Alt", Code: "AltLeft"}
)

var namedKeys = map[string]Press{
	"esc":       {Key: "Escape", Code: "Escape"},
	"enter":     {Key: "Enter", Code: "Enter"},
	"tab":       {Key: "Tab", Code: "Tab"},
	"backspace": {Key: "Backspace", Code: "Backspace"},
	"delete":    {Key: "Delete", Code: "Delete"},
	"insert":    {Key: "Insert", Code: "Insert"},
	" ":         {Key: " ", Code: "Space"},
	"space":     {Key: " ", Code: "Space"},
	"up":        {Key: "ArrowUp", Code: "ArrowUp"},
	"down":      {Key: "ArrowDown", Code: "ArrowDown"},
	"left":      {Key: "ArrowLeft", Code: "ArrowLeft"},
	"right":     {Key: "ArrowRight", Code: "ArrowRight"},
	"home":      {Key: "Home", Code: "Home"},
	"end":       {Key: "End", Code: "End"},
	"pgup":      {Key: "PageUp", Code: "PageUp"},
	"pgdown":    {Key: "PageDown", Code: "PageDown"},
}

// symbol -> physical code, for keys typed without Shift.
var plainSymbols = map[rune]string{
	'`': "Backquote", '-': "Minus", '=': "Equal", '[': "BracketLeft", ']': "BracketRight",
	'\\': "Backslash", ';': "Semicolon", '\'': "Quote", ',': "Comma", '.': "Period", '/': "Slash",
}

// symbol -> physical code, for keys that need Shift on a US layout.
var shiftedSymbols = map[rune]string{
	'~': "Backquote", '!': "Digit1", '@': "Digit2", '#': "Digit3", '$': "Digit4",
	'%': "Digit5", '^': "Digit6", '&': "Digit7", '*': "Digit8", '(': "Digit9",
	')': "Digit0", '_': "Minus", '+': "Equal", '{': "BracketLeft", '}': "BracketRight",
	'|': "Backslash", ':': "Semicolon", '"': "Quote", '<': "Comma", '>': "Period", '?': "Slash",
}

// FromTerminal maps a terminal key string such as "a", "A", "ctrl+a",
// "alt+x", "shift+tab" or "f5" to the presses it implies, modifiers first.
// Unknown strings map to nothing.
func FromTerminal(s string) []Press {
	var mods []Press
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			mods = append(mods, controlPress)
			s = strings.TrimPrefix(s, "ctrl+")
			continue
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			mods = append(mods, altPress)
			s = strings.TrimPrefix(s, "alt+")
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			mods = append(mods, shiftPress)
			s = strings.TrimPrefix(s, "shift+")
			continue
		}
		break
	}

	base, shifted, ok := basePress(s)
	if !ok {
		return nil
	}
	if shifted && !containsPress(mods, shiftPress) {
		mods = append(mods, shiftPress)
	}
	return append(mods, base)
}

func basePress(s string) (Press, bool, bool) {
	if p, ok := namedKeys[s]; ok {
		return p, false, true
	}
	if p, ok := functionKey(s); ok {
		return p, false, true
	}
	if utf8.RuneCountInString(s) != 1 {
		return Press{}, false, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r >= 'a' && r <= 'z':
		return Press{Key: s, Code: "Key" + strings.ToUpper(s)}, false, true
	case r >= 'A' && r <= 'Z':
		return Press{Key: s, Code: "Key" + s}, true, true
	case r >= '0' && r <= '9':
		return Press{Key: s, Code: "Digit" + s}, false, true
	}
	if code, ok := plainSymbols[r]; ok {
		return Press{Key: s, Code: code}, false, true
	}
	if code, ok := shiftedSymbols[r]; ok {
		return Press{Key: s, Code: code}, true, true
	}
	if unicode.IsPrint(r) {
		return Press{Key: s}, unicode.IsUpper(r), true
	}
	return Press{}, false, false
}

func functionKey(s string) (Press, bool) {
	if len(s) < 2 || len(s) > 3 || s[0] != 'f' {
		return Press{}, false
	}
	n := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return Press{}, false
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 12 {
		return Press{}, false
	}
	name := "F" + s[1:]
	return Press{Key: name, Code: name}, true
}

func containsPress(presses []Press, p Press) bool {
	for _, q := range presses {
		if q == p {
			return true
		}
	}
	return false
}
