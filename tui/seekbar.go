package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/util"
)

const (
	playedCell = "━"
	restCell   = "─"
)

// seekBar is the position.View of the control bar. It stores what the controller last pushed.
type seekBar struct {
	percent  float64
	buffered float64
	current  string
	total    string
}

func (s *seekBar) SetProgress(percent float64) {
	s.percent = percent
}

func (s *seekBar) SetTimes(current, total string) {
	s.current = current
	s.total = total
}

func (s *seekBar) SetBuffered(width float64) {
	s.buffered = width
}

// render draws the bar as played, buffered and remaining segments filling width cells.
func (s *seekBar) render(width int, palette style.Palette) string {
	if width <= 0 {
		return ""
	}

	played := cells(s.percent, width)
	buffered := max(played, cells(s.buffered, width)) - played
	rest := width - played - buffered

	return style.Fg(palette.Played)(strings.Repeat(playedCell, played)) +
		style.Fg(palette.Buffered)(strings.Repeat(playedCell, buffered)) +
		lipgloss.NewStyle().Foreground(palette.Rest).Render(strings.Repeat(restCell, rest))
}

func cells(percent float64, width int) int {
	return util.Clamp(int(math.Round(percent*float64(width)/100)), 0, width)
}

// percentAt maps a column inside a bar of width cells to a seek percent.
// The first cell is 0% and the last is 100%.
func percentAt(column, width int) float64 {
	if width <= 1 {
		return 0
	}
	return util.Clamp(float64(column)*100/float64(width-1), 0, 100)
}
