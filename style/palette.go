package style

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors the control bar is drawn with.
type Palette struct {
	Name string

	Base    lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Surface lipgloss.Color

	Played   lipgloss.Color
	Buffered lipgloss.Color
	Rest     lipgloss.Color

	Accent  lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Dark and Light are the two themes toggled with `t`.
var (
	Dark = Palette{
		Name:     "dark",
		Base:     lipgloss.Color("#1e1e2e"),
		Text:     lipgloss.Color("#cdd6f4"),
		Subtext:  lipgloss.Color("#a6adc8"),
		Surface:  lipgloss.Color("#313244"),
		Played:   lipgloss.Color("#cba6f7"),
		Buffered: lipgloss.Color("#6c7086"),
		Rest:     lipgloss.Color("#313244"),
		Accent:   lipgloss.Color("#cba6f7"),
		Warning:  lipgloss.Color("#f9e2af"),
		Error:    lipgloss.Color("#f38ba8"),
	}

	Light = Palette{
		Name:     "light",
		Base:     lipgloss.Color("#eff1f5"),
		Text:     lipgloss.Color("#4c4f69"),
		Subtext:  lipgloss.Color("#6c6f85"),
		Surface:  lipgloss.Color("#ccd0da"),
		Played:   lipgloss.Color("#8839ef"),
		Buffered: lipgloss.Color("#9ca0b0"),
		Rest:     lipgloss.Color("#dce0e8"),
		Accent:   lipgloss.Color("#8839ef"),
		Warning:  lipgloss.Color("#df8e1d"),
		Error:    lipgloss.Color("#d20f39"),
	}
)

// ThemeByName returns the named palette, falling back to Dark.
func ThemeByName(name string) Palette {
	if name == Light.Name {
		return Light
	}
	return Dark
}

// Other returns the palette toggled to from p.
func (p Palette) Other() Palette {
	if p.Name == Light.Name {
		return Dark
	}
	return Light
}
