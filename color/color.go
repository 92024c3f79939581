// Package color names the terminal colors shared by the CLI output and the control bar.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors follow the terminal's own theme.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	White    = New("7")
	HiRed    = New("9")
	HiPurple = New("13")
)

// Orange is fixed so install hints look the same everywhere.
var Orange = New("#ffb703")
