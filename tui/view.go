package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/reelctl/reelctl/icon"
	"github.com/reelctl/reelctl/style"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// seekBarLine is the line of the playing view the seek bar is drawn on.
const seekBarLine = 2

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playingState:
		output = b.viewPlaying()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			style.Truncate(b.width)(fmt.Sprintf("%s Starting mpv for %s", b.spinnerC.View(), b.title)),
		},
	)
}

func (b *statefulBubble) viewPlaying() string {
	palette := b.palette()
	title := lipgloss.NewStyle().
		Foreground(palette.Base).
		Background(palette.Accent).
		Padding(0, 1).
		Render(b.title)

	return b.renderLines(
		true,
		[]string{
			style.Truncate(b.width)(title),
			"",
			b.seekBar.render(b.barWidth(), palette),
			style.Truncate(b.width)(b.viewStatus()),
		},
	)
}

// viewStatus is the line under the seek bar: play state, times, rate, volume and toggles.
func (b *statefulBubble) viewStatus() string {
	palette := b.palette()
	indicators := b.controls.State()
	faint := style.Fg(palette.Subtext)

	playState := icon.Get(icon.Pause)
	if indicators.Paused {
		playState = icon.Get(icon.Play)
	}

	times := fmt.Sprintf("%s / %s", b.seekBar.current, b.seekBar.total)
	if b.position.Seeking() {
		times = icon.Get(icon.Seeking) + " " + times
	}

	volume := icon.Get(icon.Volume)
	if indicators.Muted || indicators.Volume == 0 {
		volume = icon.Get(icon.Muted)
	}

	parts := []string{
		style.Fg(palette.Text)(playState + " " + times),
		faint(fmt.Sprintf("%gx", indicators.Rate)),
		faint(fmt.Sprintf("%s %d%%", volume, int(math.Round(indicators.Volume*100)))),
	}

	if indicators.Captions {
		parts = append(parts, faint(icon.Get(icon.Captions)))
	}
	if indicators.Fullscreen {
		parts = append(parts, faint(icon.Get(icon.Fullscreen)))
	}

	return strings.Join(parts, "   ")
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(b.palette().Error).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Playback could not continue:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
