package tui

import "github.com/charmbracelet/lipgloss"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme is the set of styles a view renders with.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	Correct      lipgloss.Style
	Incorrect    lipgloss.Style
	Current      lipgloss.Style
	CurrentWrong lipgloss.Style
	Pending      lipgloss.Style

	KeyCap     lipgloss.Style
	KeyPressed lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardValue lipgloss.Style
	Badge     lipgloss.Style
	Panel     lipgloss.Style

	TableHeader   lipgloss.Color
	TableSelected lipgloss.Color
}

type palette struct {
	text, muted, faint, border  lipgloss.Color
	accent, good, bad, keyBg    lipgloss.Color
	pressedFg, pressedBg, panel lipgloss.Color
}

var (
	darkPalette = palette{
		text:      "#F0F0F0",
		muted:     "#8C8C8C",
		faint:     "#6E6E6E",
		border:    "#4A4A4A",
		accent:    "#C89A3A",
		good:      "#52C41A",
		bad:       "#FF4D4F",
		keyBg:     "#2A2A2A",
		pressedFg: "#FFFFFF",
		pressedBg: "#2563EB",
		panel:     "#1F1F1F",
	}
	lightPalette = palette{
		text:      "#1F1F1F",
		muted:     "#595959",
		faint:     "#8C8C8C",
		border:    "#BFBFBF",
		accent:    "#1D4ED8",
		good:      "#16A34A",
		bad:       "#DC2626",
		keyBg:     "#E5E7EB",
		pressedFg: "#FFFFFF",
		pressedBg: "#2563EB",
		panel:     "#F5F5F5",
	}
)

func newTheme(name string, p palette) Theme {
	card := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.border)
	tab := lipgloss.NewStyle().Padding(0, 1)
	return Theme{
		Name:    name,
		Title:   lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.faint),
		Text:    lipgloss.NewStyle().Foreground(p.text),
		Error:   lipgloss.NewStyle().Foreground(p.bad),
		Success: lipgloss.NewStyle().Foreground(p.good),

		ActiveTab:   tab.Foreground(p.text).Bold(true).Underline(true),
		InactiveTab: tab.Foreground(p.muted),

		Correct:      lipgloss.NewStyle().Foreground(p.good),
		Incorrect:    lipgloss.NewStyle().Foreground(p.bad).Strikethrough(true),
		Current:      lipgloss.NewStyle().Foreground(p.accent).Bold(true).Underline(true),
		CurrentWrong: lipgloss.NewStyle().Foreground(p.bad).Bold(true).Underline(true),
		Pending:      lipgloss.NewStyle().Foreground(p.muted),

		KeyCap:     lipgloss.NewStyle().Foreground(p.text).Background(p.keyBg),
		KeyPressed: lipgloss.NewStyle().Foreground(p.pressedFg).Background(p.pressedBg).Bold(true),

		Card:      card,
		CardTitle: lipgloss.NewStyle().Foreground(p.muted),
		CardValue: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		Badge:     lipgloss.NewStyle().Foreground(p.panel).Background(p.accent).Bold(true).Padding(0, 2),
		Panel:     card.BorderForeground(p.accent).Padding(1, 2),

		TableHeader:   p.text,
		TableSelected: p.accent,
	}
}

// ThemeFor returns the named theme, falling back to dark.
func ThemeFor(name string) Theme {
	if name == ThemeLight {
		return newTheme(ThemeLight, lightPalette)
	}
	return newTheme(ThemeDark, darkPalette)
}

func (t Theme) toggled() Theme {
	if t.Name == ThemeDark {
		return ThemeFor(ThemeLight)
	}
	return ThemeFor(ThemeDark)
}
