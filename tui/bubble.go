// Package tui is the terminal control bar: a bubbletea program that renders the seek bar and
// indicators and turns keys and mouse gestures into engine commands.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/reelctl/reelctl/controls"
	"github.com/reelctl/reelctl/internal/ui"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/player"
	"github.com/reelctl/reelctl/position"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble is the whole program state of one playback session.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	spinnerC spinner.Model
	helpC    help.Model
	notifier *ui.Model

	engine   player.Engine
	seekBar  *seekBar
	position *position.Controller
	controls *controls.Controls

	// Raw engine reports, combined before they reach the controller.
	mediaPosition float64
	mediaDuration float64
	bufferedEnd   float64

	started  bool
	ended    bool
	dragging bool
	resumeAt mo.Option[float64]

	// lastLiveSeek throttles seeks issued while dragging in live mode.
	lastLiveSeek time.Time
	now          func() time.Time

	title     string
	lastError error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

// barWidth is the number of cells of the seek bar.
func (b *statefulBubble) barWidth() int {
	if fixed := viper.GetInt(key.TUISeekbarWidth); fixed > 0 {
		return min(fixed, b.width)
	}
	return b.width
}

func (b *statefulBubble) palette() style.Palette {
	return b.controls.State().Theme
}

// applyTheme restyles the components that do not render through the palette on every frame.
func (b *statefulBubble) applyTheme() {
	palette := b.palette()
	b.notifier.InfoStyle = lipgloss.NewStyle().Foreground(palette.Subtext)
	b.notifier.WarningStyle = lipgloss.NewStyle().Foreground(palette.Warning)
	b.spinnerC.Style = lipgloss.NewStyle().Foreground(palette.Accent)
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:   keymap,
		engine:   options.Engine,
		seekBar:  &seekBar{},
		notifier: &ui.Model{},
		resumeAt: options.ResumeAt,
		now:      time.Now,
		title:    util.MediaTitle(options.Target),
		options:  options,
	}

	bubble.position = position.New(bubble.engine, bubble.seekBar)
	bubble.controls = controls.New(bubble.engine, bubble.position, style.ThemeByName(viper.GetString(key.TUITheme)))

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.applyTheme()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)

	return &bubble
}
