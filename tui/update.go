package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelctl/reelctl/internal/ui"
	keys "github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/player"
	"github.com/reelctl/reelctl/position"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.startEngine())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, notifyCmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, notifyCmd
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model = b
		cmd   tea.Cmd
	)

	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case playingState:
		model, cmd = b.updatePlaying(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	}

	return model, tea.Batch(notifyCmd, cmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case engineStartedMsg:
		b.started = true
		b.controls.Sync()

		var cmds []tea.Cmd
		if volume, ok := b.options.Volume.Get(); ok {
			cmds = append(cmds, b.notifyErr(b.controls.SetVolume(volume)))
		}
		if rate, ok := b.options.Rate.Get(); ok {
			cmds = append(cmds, b.notifyErr(b.controls.SetRate(rate)))
		}

		b.setState(playingState)
		return b, tea.Batch(append(cmds, b.waitForEngineEvent(), b.scheduleSave())...)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.quit) {
			return b, tea.Quit
		}
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case engineEventMsg:
		return b, b.handleEngineEvent(player.Event(msg))
	case saveTickMsg:
		b.persist()
		return b, b.scheduleSave()
	case tea.MouseMsg:
		return b, b.handleMouse(msg)
	case tea.KeyMsg:
		return b, b.handleKey(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}
	return b, nil
}

func (b *statefulBubble) handleEngineEvent(ev player.Event) tea.Cmd {
	var cmd tea.Cmd

	switch ev.Kind {
	case player.TimeChanged:
		b.mediaPosition = ev.Value
		b.position.OnMediaTimeChanged(b.mediaPosition, b.mediaDuration)
	case player.DurationKnown:
		b.mediaDuration = ev.Value
		b.position.OnMediaTimeChanged(b.mediaPosition, b.mediaDuration)
		b.position.OnMediaBufferChanged(b.bufferedEnd, b.mediaDuration)
		cmd = b.resume()
	case player.BufferChanged:
		b.bufferedEnd = ev.Value
		b.position.OnMediaBufferChanged(b.bufferedEnd, b.mediaDuration)
	case player.PlayStateChanged:
		b.controls.OnPlayStateChanged(ev.Flag)
		if !ev.Flag {
			b.ended = false
		}
	case player.VolumeChanged:
		b.controls.OnVolumeChanged(ev.Value)
	case player.MuteChanged:
		b.controls.OnMuteChanged(ev.Flag)
	case player.Ended:
		b.ended = true
		b.controls.OnPlayStateChanged(true)
		b.persist()
		cmd = ui.Notify("Playback finished")
	case player.Exited:
		return tea.Quit
	}

	return tea.Batch(cmd, b.waitForEngineEvent())
}

// resume seeks to the saved position the first time the duration is known.
func (b *statefulBubble) resume() tea.Cmd {
	at, ok := b.resumeAt.Get()
	if !ok {
		return nil
	}

	duration, known := b.position.Duration().Get()
	if !known {
		return nil
	}
	b.resumeAt = mo.None[float64]()

	if at <= 0 || at >= duration {
		return nil
	}

	if err := b.position.OnUserSeekCommit(at * 100 / duration); err != nil {
		return b.notifyErr(err)
	}
	return ui.Notify(fmt.Sprintf("Resumed at %s", position.FormatDuration(at)))
}

func (b *statefulBubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := b.keymap

	switch {
	case key.Matches(msg, k.quit):
		return tea.Quit
	case key.Matches(msg, k.togglePlay):
		return b.notifyErr(b.controls.TogglePlay())
	case key.Matches(msg, k.stop):
		b.ended = false
		b.cancelScrub()
		return b.notifyErr(b.controls.Stop())
	case key.Matches(msg, k.frameStep):
		b.cancelScrub()
		return b.notifyErr(b.position.StepFrame())
	case key.Matches(msg, k.back):
		return b.skip(-viper.GetFloat64(keys.PlayerSkipSmall))
	case key.Matches(msg, k.forward):
		return b.skip(viper.GetFloat64(keys.PlayerSkipSmall))
	case key.Matches(msg, k.backLarge):
		return b.skip(-viper.GetFloat64(keys.PlayerSkipLarge))
	case key.Matches(msg, k.forwardLarge):
		return b.skip(viper.GetFloat64(keys.PlayerSkipLarge))
	case key.Matches(msg, k.scrubBack):
		return b.scrub(-1)
	case key.Matches(msg, k.scrubForward):
		return b.scrub(1)
	case key.Matches(msg, k.commitScrub):
		if b.position.Seeking() {
			return b.commit(b.position.Percent())
		}
	case key.Matches(msg, k.volumeUp):
		return b.notifyErr(b.controls.VolumeUp())
	case key.Matches(msg, k.volumeDown):
		return b.notifyErr(b.controls.VolumeDown())
	case key.Matches(msg, k.mute):
		return b.notifyErr(b.controls.ToggleMute())
	case key.Matches(msg, k.slower):
		return b.notifyErr(b.controls.CycleRate(-1))
	case key.Matches(msg, k.faster):
		return b.notifyErr(b.controls.CycleRate(1))
	case key.Matches(msg, k.fullscreen):
		return b.notifyErr(b.controls.ToggleFullscreen())
	case key.Matches(msg, k.captions):
		return b.notifyErr(b.controls.ToggleCaptions())
	case key.Matches(msg, k.pip):
		return b.notifyErr(b.controls.TogglePiP())
	case key.Matches(msg, k.theme):
		err := b.controls.ToggleTheme()
		b.applyTheme()
		if err != nil {
			return ui.Warn("Theme changed but not saved")
		}
	case key.Matches(msg, k.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return nil
}

// handleMouse scrubs while the left button is held on the seek bar and seeks on release.
func (b *statefulBubble) handleMouse(msg tea.MouseMsg) tea.Cmd {
	width := b.barWidth()
	column := msg.X - paddingStyle.GetPaddingLeft()

	switch msg.Action {
	case tea.MouseActionPress:
		onBar := msg.Y == paddingStyle.GetPaddingTop()+seekBarLine && column >= 0 && column < width
		if msg.Button != tea.MouseButtonLeft || !onBar {
			return nil
		}
		b.dragging = true
		return b.drag(percentAt(column, width))
	case tea.MouseActionMotion:
		if !b.dragging {
			return nil
		}
		return b.drag(percentAt(column, width))
	case tea.MouseActionRelease:
		if !b.dragging {
			return nil
		}
		b.dragging = false
		return b.commit(percentAt(column, width))
	}

	return nil
}

// cancelScrub drops an uncommitted drag so the bar follows the engine again.
func (b *statefulBubble) cancelScrub() {
	b.dragging = false
	b.position.CancelDrag()
}

func (b *statefulBubble) skip(delta float64) tea.Cmd {
	b.ended = false
	b.cancelScrub()
	return b.notifyErr(b.position.SkipBy(delta))
}

// scrub moves the drag position by one small skip.
func (b *statefulBubble) scrub(direction float64) tea.Cmd {
	step := 1.0
	if duration, ok := b.position.Duration().Get(); ok {
		step = viper.GetFloat64(keys.PlayerSkipSmall) * 100 / duration
	}
	return b.drag(b.position.Percent() + direction*step)
}

// drag previews percent. In live mode it also seeks, at most once per live seek interval.
func (b *statefulBubble) drag(percent float64) tea.Cmd {
	b.position.OnUserSeekDrag(percent)
	if !b.options.LiveSeek {
		return nil
	}

	now := b.now()
	interval := time.Duration(viper.GetInt(keys.PlayerLiveSeekInterval)) * time.Millisecond
	if now.Sub(b.lastLiveSeek) < interval {
		return nil
	}
	b.lastLiveSeek = now

	percent = b.position.Percent()
	err := b.position.OnUserSeekCommit(percent)

	// The gesture is still in progress.
	b.position.OnUserSeekDrag(percent)
	return b.notifyErr(err)
}

func (b *statefulBubble) commit(percent float64) tea.Cmd {
	b.ended = false
	b.lastLiveSeek = time.Time{}
	return b.notifyErr(b.position.OnUserSeekCommit(percent))
}
