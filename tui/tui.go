package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelctl/reelctl/history"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/player"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Options configures one playback session.
type Options struct {
	// Target is the file path or URL to play. It may be empty for an attached engine.
	Target string

	// Engine plays Target. It is started by the program and closed when Run returns.
	Engine player.Engine

	// ResumeAt is a position to seek to once the duration is known.
	ResumeAt mo.Option[float64]

	// Volume in [0,1] and Rate override the engine defaults when present.
	Volume mo.Option[float64]
	Rate   mo.Option[float64]

	// LiveSeek commits every drag update instead of only the release.
	LiveSeek bool
}

// Run plays options.Target until the user quits or the engine exits.
func Run(options *Options) error {
	bubble := newBubble(options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()

	if bubble.started {
		bubble.persist()
		if closeErr := options.Engine.Close(); closeErr != nil {
			log.Warnf("closing engine: %v", closeErr)
		}
	}

	if err != nil {
		return err
	}
	return bubble.lastError
}

// persist stores the current position in the history.
func (b *statefulBubble) persist() {
	if !viper.GetBool(key.HistoryEnable) || b.options.Target == "" {
		return
	}

	pos, dur := b.position.Position(), b.position.Duration().OrElse(0)
	if b.ended {
		pos = dur
	}

	if err := history.Save(b.options.Target, pos, dur); err != nil {
		log.Warnf("saving history: %v", err)
	}
}
