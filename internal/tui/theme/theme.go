// Package theme defines color themes for the WalletPal TUI.
//
// Every theme fills the same set of roles. The ledger roles (Income,
// Spent, Left, Saved, ToGo) color budget figures and chart series so a
// number reads the same on every tab.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // app background
	Surface       lipgloss.Color // cards and panels
	SurfaceHover  lipgloss.Color // active tab, selected row
	SurfaceBright lipgloss.Color // headers and emphasis
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // focused card
	TextDim       lipgloss.Color // hints, disabled tabs
	TextMuted     lipgloss.Color // labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color

	Green       lipgloss.Color
	GreenBright lipgloss.Color
	Orange      lipgloss.Color
	Red         lipgloss.Color
	Blue        lipgloss.Color
	Yellow      lipgloss.Color
	Magenta     lipgloss.Color
	Cyan        lipgloss.Color

	Income lipgloss.Color
	Spent  lipgloss.Color
	Left   lipgloss.Color // expense limit not yet spent
	Saved  lipgloss.Color
	ToGo   lipgloss.Color // savings goal not yet reached
}

// Active is the currently selected theme.
var Active = Greenback

// Greenback is the default: dark banknote greens with brass accents.
var Greenback = Theme{
	Name:          "greenback",
	Background:    lipgloss.Color("#0E1411"),
	Surface:       lipgloss.Color("#16201B"),
	SurfaceHover:  lipgloss.Color("#213029"),
	SurfaceBright: lipgloss.Color("#2C3F35"),
	Border:        lipgloss.Color("#35493E"),
	BorderAccent:  lipgloss.Color("#C9A74A"),
	TextDim:       lipgloss.Color("#51665A"),
	TextMuted:     lipgloss.Color("#8FA397"),
	TextPrimary:   lipgloss.Color("#E8EFE9"),
	Accent:        lipgloss.Color("#C9A74A"),
	AccentBright:  lipgloss.Color("#E6C66A"),

	Green:       lipgloss.Color("#5FAF6E"),
	GreenBright: lipgloss.Color("#83D391"),
	Orange:      lipgloss.Color("#D9873B"),
	Red:         lipgloss.Color("#D9534F"),
	Blue:        lipgloss.Color("#5C94C7"),
	Yellow:      lipgloss.Color("#D8BE4C"),
	Magenta:     lipgloss.Color("#B978B3"),
	Cyan:        lipgloss.Color("#4FB3A9"),

	Income: lipgloss.Color("#5C94C7"),
	Spent:  lipgloss.Color("#D9534F"),
	Left:   lipgloss.Color("#D9873B"),
	Saved:  lipgloss.Color("#5FAF6E"),
	ToGo:   lipgloss.Color("#D8BE4C"),
}

// Ink is a cool slate theme with blue accents.
var Ink = Theme{
	Name:          "ink",
	Background:    lipgloss.Color("#12151C"),
	Surface:       lipgloss.Color("#1B2029"),
	SurfaceHover:  lipgloss.Color("#262D3A"),
	SurfaceBright: lipgloss.Color("#323B4C"),
	Border:        lipgloss.Color("#3B4558"),
	BorderAccent:  lipgloss.Color("#6FA8DC"),
	TextDim:       lipgloss.Color("#566178"),
	TextMuted:     lipgloss.Color("#98A3B8"),
	TextPrimary:   lipgloss.Color("#E4E8F0"),
	Accent:        lipgloss.Color("#6FA8DC"),
	AccentBright:  lipgloss.Color("#9CC7F0"),

	Green:       lipgloss.Color("#7FB77E"),
	GreenBright: lipgloss.Color("#A2D6A0"),
	Orange:      lipgloss.Color("#E39B5B"),
	Red:         lipgloss.Color("#E06C75"),
	Blue:        lipgloss.Color("#6FA8DC"),
	Yellow:      lipgloss.Color("#E5C07B"),
	Magenta:     lipgloss.Color("#C58AD9"),
	Cyan:        lipgloss.Color("#61C0C8"),

	Income: lipgloss.Color("#6FA8DC"),
	Spent:  lipgloss.Color("#E06C75"),
	Left:   lipgloss.Color("#E39B5B"),
	Saved:  lipgloss.Color("#7FB77E"),
	ToGo:   lipgloss.Color("#E5C07B"),
}

// Paper is a light theme for bright terminals.
var Paper = Theme{
	Name:          "paper",
	Background:    lipgloss.Color("#F7F4EC"),
	Surface:       lipgloss.Color("#EEE9DC"),
	SurfaceHover:  lipgloss.Color("#E2DBC9"),
	SurfaceBright: lipgloss.Color("#D6CDB6"),
	Border:        lipgloss.Color("#BFB59C"),
	BorderAccent:  lipgloss.Color("#2F6F62"),
	TextDim:       lipgloss.Color("#A39A84"),
	TextMuted:     lipgloss.Color("#6E6755"),
	TextPrimary:   lipgloss.Color("#25231D"),
	Accent:        lipgloss.Color("#2F6F62"),
	AccentBright:  lipgloss.Color("#1F5247"),

	Green:       lipgloss.Color("#3C7A3A"),
	GreenBright: lipgloss.Color("#2A6128"),
	Orange:      lipgloss.Color("#B35F12"),
	Red:         lipgloss.Color("#B3302B"),
	Blue:        lipgloss.Color("#2E5E93"),
	Yellow:      lipgloss.Color("#8F7410"),
	Magenta:     lipgloss.Color("#8A3F86"),
	Cyan:        lipgloss.Color("#23746D"),

	Income: lipgloss.Color("#2E5E93"),
	Spent:  lipgloss.Color("#B3302B"),
	Left:   lipgloss.Color("#B35F12"),
	Saved:  lipgloss.Color("#3C7A3A"),
	ToGo:   lipgloss.Color("#8F7410"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),

	Green:       lipgloss.Color("2"),
	GreenBright: lipgloss.Color("10"),
	Orange:      lipgloss.Color("3"),
	Red:         lipgloss.Color("1"),
	Blue:        lipgloss.Color("4"),
	Yellow:      lipgloss.Color("11"),
	Magenta:     lipgloss.Color("5"),
	Cyan:        lipgloss.Color("6"),

	Income: lipgloss.Color("4"),
	Spent:  lipgloss.Color("1"),
	Left:   lipgloss.Color("3"),
	Saved:  lipgloss.Color("2"),
	ToGo:   lipgloss.Color("11"),
}

// All available themes, in the order the settings tab cycles them.
var All = []Theme{Greenback, Ink, Paper, Terminal}

// ByName returns a theme by its name, defaulting to Greenback.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Greenback
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Next returns the name of the theme after name, wrapping around.
func Next(name string) string {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)].Name
		}
	}
	return All[0].Name
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
