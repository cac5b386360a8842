package keyboard

// RowKind names a row of the layout.
type RowKind string

// Layout rows, top to bottom.
const (
	RowFunction RowKind = "function"
	RowNumber   RowKind = "number"
	RowQwerty   RowKind = "qwerty"
	RowAsdf     RowKind = "asdf"
	RowZxcv     RowKind = "zxcv"
	RowBottom   RowKind = "bottom"
)

// Key is a single cap on the virtual keyboard. Width is in terminal cells.
type Key struct {
	Key    string
	Label  string
	Width  int
	Spacer bool
}

// Row is one row of caps.
type Row struct {
	Kind RowKind
	Keys []Key
}

func k(key, label string, width int) Key {
	return Key{Key: key, Label: label, Width: width}
}

func spacer(width int) Key {
	return Key{Spacer: true, Width: width}
}

// Layout is the fixed US keyboard shown by the tester.
var Layout = []Row{
	{Kind: RowFunction, Keys: []Key{
		k("Escape", "Esc", 5), spacer(2),
		k("F1", "F1", 5), k("F2", "F2", 5), k("F3", "F3", 5), k("F4", "F4", 5), spacer(1),
		k("F5", "F5", 5), k("F6", "F6", 5), k("F7", "F7", 5), k("F8", "F8", 5), spacer(1),
		k("F9", "F9", 5), k("F10", "F10", 5), k("F11", "F11", 5), k("F12", "F12", 5),
	}},
	{Kind: RowNumber, Keys: []Key{
		k("`", "` ~", 5), k("1", "1 !", 5), k("2", "2 @", 5), k("3", "3 #", 5),
		k("4", "4 $", 5), k("5", "5 %", 5), k("6", "6 ^", 5), k("7", "7 &", 5),
		k("8", "8 *", 5), k("9", "9 (", 5), k("0", "0 )", 5), k("-", "- _", 5),
		k("=", "= +", 5), k("Backspace", "⌫", 8),
	}},
	{Kind: RowQwerty, Keys: []Key{
		k("Tab", "Tab", 7), k("q", "Q", 5), k("w", "W", 5), k("e", "E", 5),
		k("r", "R", 5), k("t", "T", 5), k("y", "Y", 5), k("u", "U", 5),
		k("i", "I", 5), k("o", "O", 5), k("p", "P", 5), k("[", "[ {", 5),
		k("]", "] }", 5), k("\\", "\\ |", 6),
	}},
	{Kind: RowAsdf, Keys: []Key{
		k("CapsLock", "Caps", 8), k("a", "A", 5), k("s", "S", 5), k("d", "D", 5),
		k("f", "F", 5), k("g", "G", 5), k("h", "H", 5), k("j", "J", 5),
		k("k", "K", 5), k("l", "L", 5), k(";", "; :", 5), k("'", "' \"", 5),
		k("Enter", "Enter", 9),
	}},
	{Kind: RowZxcv, Keys: []Key{
		k("Shift", "Shift", 10), k("z", "Z", 5), k("x", "X", 5), k("c", "C", 5),
		k("v", "V", 5), k("b", "B", 5), k("n", "N", 5), k("m", "M", 5),
		k(",", ", <", 5), k(".", ". >", 5), k("/", "/ ?", 5), k("Shift", "Shift", 10),
	}},
	{Kind: RowBottom, Keys: []Key{
		k("Control", "Ctrl", 7), k("Meta", "⌘", 5), k("Alt", "Alt", 7),
		k(" ", "Space", 29),
		k("Alt", "Alt", 7), k("Meta", "⌘", 5), k("Control", "Ctrl", 7),
	}},
}
