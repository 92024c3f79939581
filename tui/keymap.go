package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/style"
)

// statefulKeymap holds the bindings of every state; help() picks the ones shown.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	togglePlay, stop, frameStep,
	back, forward, backLarge, forwardLarge,
	scrubBack, scrubForward, commitScrub,
	volumeUp, volumeDown, mute,
	slower, faster,
	fullscreen, captions, pip, theme,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		togglePlay: key.NewBinding(
			key.WithKeys(" ", "k"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		frameStep: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "next frame"),
		),
		back: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "back 5s"),
		),
		forward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "forward 5s"),
		),
		backLarge: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "back 10s"),
		),
		forwardLarge: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "forward 10s"),
		),
		scrubBack: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "scrub back"),
		),
		scrubForward: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "scrub forward"),
		),
		commitScrub: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "seek to scrub"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "volume down"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		slower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "slower"),
		),
		faster: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "faster"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		captions: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "captions"),
		),
		pip: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "picture-in-picture"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case playingState:
		return h(k.togglePlay, k.back, k.forward, k.mute, k.fullscreen, k.showHelp, k.quit),
			h(
				k.togglePlay, k.stop, k.frameStep,
				k.back, k.forward, k.backLarge, k.forwardLarge,
				k.scrubBack, k.scrubForward, k.commitScrub,
				k.volumeUp, k.volumeDown, k.mute,
				k.slower, k.faster,
				k.fullscreen, k.captions, k.pip, k.theme,
				k.showHelp, k.quit,
			)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()

	var columns [][]key.Binding
	for len(full) > 0 {
		n := min(5, len(full))
		columns = append(columns, full[:n])
		full = full[n:]
	}
	return columns
}
