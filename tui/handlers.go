package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelctl/reelctl/internal/ui"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/player"
	"github.com/spf13/viper"
)

const startTimeout = 15 * time.Second

type (
	engineStartedMsg struct{}
	engineEventMsg   player.Event
	saveTickMsg      struct{}
)

func (b *statefulBubble) startEngine() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
		defer cancel()

		if err := b.engine.Start(ctx, b.options.Target); err != nil {
			return fmt.Errorf("start player: %w", err)
		}
		return engineStartedMsg{}
	}
}

// waitForEngineEvent blocks for the next engine event. It must be re-armed after every event.
func (b *statefulBubble) waitForEngineEvent() tea.Cmd {
	events := b.engine.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return engineEventMsg{Kind: player.Exited}
		}
		return engineEventMsg(ev)
	}
}

// scheduleSave returns the next periodic history save, or nil when saving is off.
func (b *statefulBubble) scheduleSave() tea.Cmd {
	interval := viper.GetInt(key.HistorySaveInterval)
	if !viper.GetBool(key.HistoryEnable) || interval <= 0 {
		return nil
	}

	return tea.Tick(time.Duration(interval)*time.Second, func(time.Time) tea.Msg {
		return saveTickMsg{}
	})
}

// notifyErr turns a failed control action into a notification.
func (b *statefulBubble) notifyErr(err error) tea.Cmd {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, player.ErrNoCaptions):
		return ui.Warn("No captions available")
	case errors.Is(err, player.ErrUnsupported):
		return ui.Warn("Picture-in-picture is not supported by mpv")
	default:
		log.Error(err)
		return ui.Warn(err.Error())
	}
}
