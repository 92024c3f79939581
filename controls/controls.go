// Package controls implements the control bar actions other than seeking:
// play state, volume, mute, rate, fullscreen, captions, picture-in-picture and theme.
package controls

import (
	"errors"
	"math"

	"github.com/reelctl/reelctl/config"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/player"
	"github.com/reelctl/reelctl/position"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/util"
	"github.com/samber/lo"
)

// Rates are the selectable playback speeds, slowest first.
var Rates = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}

const (
	volumeStep       = 0.05
	minRestoreVolume = 0.05
	maxRate          = 4
)

// State is what the indicators show.
type State struct {
	Paused     bool
	Volume     float64
	Muted      bool
	Rate       float64
	Captions   bool
	Fullscreen bool
	Theme      style.Palette
}

// Controls forwards user actions to the engine and tracks the resulting indicator state.
type Controls struct {
	engine   player.Engine
	position *position.Controller
	state    State

	// lastVolume is restored on unmute.
	lastVolume float64
}

func New(engine player.Engine, pos *position.Controller, theme style.Palette) *Controls {
	return &Controls{
		engine:   engine,
		position: pos,
		state: State{
			Paused: true,
			Volume: 1,
			Rate:   1,
			Theme:  theme,
		},
		lastVolume: 1,
	}
}

// State returns a copy of the indicator state.
func (c *Controls) State() State {
	return c.state
}

// Sync reads the current engine state. Properties the engine does not have yet keep their previous value.
func (c *Controls) Sync() {
	if paused, err := c.engine.Paused(); err == nil {
		c.state.Paused = paused
	}
	if muted, err := c.engine.Muted(); err == nil {
		c.OnMuteChanged(muted)
	}
	if volume, err := c.engine.Volume(); err == nil {
		c.OnVolumeChanged(volume)
	}
	if rate, err := c.engine.Speed(); err == nil {
		c.state.Rate = rate
	}
	if fullscreen, err := c.engine.Fullscreen(); err == nil {
		c.state.Fullscreen = fullscreen
	}
	if captions, err := c.engine.Captions(); err == nil {
		c.state.Captions = captions
	}
}

func (c *Controls) TogglePlay() error {
	if c.state.Paused {
		if err := c.engine.Play(); err != nil {
			return err
		}
	} else if err := c.engine.Pause(); err != nil {
		return err
	}

	c.state.Paused = !c.state.Paused
	return nil
}

// Stop pauses and rewinds to the beginning.
func (c *Controls) Stop() error {
	if err := c.engine.Pause(); err != nil {
		return err
	}
	c.state.Paused = true

	if err := c.engine.SeekTo(0); err != nil {
		return err
	}
	c.position.Reset()
	return nil
}

// SetVolume sets the volume in [0,1]. Raising the volume of a muted player unmutes it.
func (c *Controls) SetVolume(volume float64) error {
	if !util.IsFinite(volume) {
		return nil
	}
	volume = util.Clamp(volume, 0, 1)

	if err := c.engine.SetVolume(volume); err != nil {
		return err
	}

	if c.state.Muted && volume > 0 {
		if err := c.engine.SetMuted(false); err != nil {
			return err
		}
		c.state.Muted = false
	}

	c.state.Volume = volume
	if volume > 0 {
		c.lastVolume = volume
	}
	return nil
}

func (c *Controls) VolumeUp() error {
	return c.SetVolume(roundVolume(c.state.Volume + volumeStep))
}

func (c *Controls) VolumeDown() error {
	return c.SetVolume(roundVolume(c.state.Volume - volumeStep))
}

// ToggleMute unmutes when muted or silent, restoring the last audible volume.
// Otherwise it mutes and the volume indicator drops to zero.
func (c *Controls) ToggleMute() error {
	if c.state.Muted || c.state.Volume == 0 {
		volume := math.Max(minRestoreVolume, lo.Ternary(c.lastVolume > 0, c.lastVolume, 1))

		if err := c.engine.SetMuted(false); err != nil {
			return err
		}
		c.state.Muted = false
		return c.SetVolume(volume)
	}

	if err := c.engine.SetMuted(true); err != nil {
		return err
	}
	c.lastVolume = c.state.Volume
	c.state.Muted = true
	c.state.Volume = 0
	return nil
}

// CycleRate moves to the next (direction > 0) or previous selectable rate, stopping at either end.
func (c *Controls) CycleRate(direction int) error {
	return c.SetRate(nextRate(c.state.Rate, direction))
}

// SetRate sets an arbitrary speed, clamped to (0, 4].
func (c *Controls) SetRate(rate float64) error {
	switch {
	case !util.IsFinite(rate):
		rate = 1
	case rate <= 0:
		rate = Rates[0]
	case rate > maxRate:
		rate = maxRate
	}

	if err := c.engine.SetSpeed(rate); err != nil {
		return err
	}
	c.state.Rate = rate
	return nil
}

func (c *Controls) ToggleFullscreen() error {
	if err := c.engine.SetFullscreen(!c.state.Fullscreen); err != nil {
		return err
	}
	c.state.Fullscreen = !c.state.Fullscreen
	return nil
}

// ToggleCaptions flips subtitle visibility. Media without subtitle tracks is left alone
// and player.ErrNoCaptions is returned.
func (c *Controls) ToggleCaptions() error {
	if err := c.engine.SetCaptions(!c.state.Captions); err != nil {
		if errors.Is(err, player.ErrNoCaptions) {
			log.Debug("captions toggled without subtitle tracks")
		}
		return err
	}
	c.state.Captions = !c.state.Captions
	return nil
}

// TogglePiP requests picture-in-picture, which engines may not support.
func (c *Controls) TogglePiP() error {
	err := c.engine.PictureInPicture()
	if errors.Is(err, player.ErrUnsupported) {
		log.Warn("picture-in-picture is not available")
	}
	return err
}

// ToggleTheme switches between the light and dark palettes and persists the choice.
// The theme changes even if it could not be saved.
func (c *Controls) ToggleTheme() error {
	c.state.Theme = c.state.Theme.Other()

	if err := config.Persist(key.TUITheme, c.state.Theme.Name); err != nil {
		log.Warnf("saving theme: %v", err)
		return err
	}
	return nil
}

// OnPlayStateChanged records a pause change reported by the engine.
func (c *Controls) OnPlayStateChanged(paused bool) {
	c.state.Paused = paused
}

// OnVolumeChanged records an engine volume change. It is ignored while muted
// since the indicator shows zero then.
func (c *Controls) OnVolumeChanged(volume float64) {
	if !util.IsFinite(volume) || c.state.Muted {
		return
	}
	c.state.Volume = util.Clamp(volume, 0, 1)
	if c.state.Volume > 0 {
		c.lastVolume = c.state.Volume
	}
}

// OnMuteChanged records an engine mute change.
func (c *Controls) OnMuteChanged(muted bool) {
	if muted == c.state.Muted {
		return
	}

	c.state.Muted = muted
	if muted {
		if c.state.Volume > 0 {
			c.lastVolume = c.state.Volume
		}
		c.state.Volume = 0
		return
	}
	c.state.Volume = c.lastVolume
}

func roundVolume(v float64) float64 {
	return math.Round(v*100) / 100
}

func nextRate(current float64, direction int) float64 {
	switch {
	case direction > 0:
		if next, ok := lo.Find(Rates, func(r float64) bool { return r > current }); ok {
			return next
		}
		return math.Max(current, Rates[len(Rates)-1])
	case direction < 0:
		slower := lo.Filter(Rates, func(r float64, _ int) bool { return r < current })
		if len(slower) > 0 {
			return slower[len(slower)-1]
		}
		return math.Min(current, Rates[0])
	default:
		return current
	}
}
