package keyboard

import "strings"

// KeyState is a layout key with its highlight.
type KeyState struct {
	Key
	Pressed bool
}

// RowState is a highlighted layout row.
type RowState struct {
	Kind RowKind
	Keys []KeyState
}

// Highlight maps held keys onto layout. Matching ignores case. Spacers are
// never pressed.
func Highlight(layout []Row, pressed []string) []RowState {
	held := make(map[string]struct{}, len(pressed))
	for _, p := range pressed {
		held[strings.ToLower(p)] = struct{}{}
	}
	rows := make([]RowState, 0, len(layout))
	for _, row := range layout {
		states := make([]KeyState, 0, len(row.Keys))
		for _, key := range row.Keys {
			_, on := held[strings.ToLower(key.Key)]
			states = append(states, KeyState{Key: key, Pressed: on && !key.Spacer})
		}
		rows = append(rows, RowState{Kind: row.Kind, Keys: states})
	}
	return rows
}
