// Package playertest provides an in-memory player.Engine for tests.
package playertest

import (
	"context"
	"sync"

	"github.com/reelctl/reelctl/player"
	"github.com/samber/lo"
)

// Engine is a scriptable player.Engine. The zero value is not usable; call New.
type Engine struct {
	mu sync.Mutex

	Target     string
	Started    bool
	Closed     bool
	Pos        float64
	Dur        float64
	Buffered   float64
	IsPaused   bool
	Vol        float64
	IsMuted    bool
	Rate       float64
	IsFull     bool
	SubTracks  []player.Track
	SubsShown  bool
	Seeks      []float64
	Loads      []string
	StartErr   error
	SeekErr    error
	CommandErr error

	events chan player.Event
	exited chan struct{}
	once   sync.Once
}

// New returns an engine with mpv's defaults: paused, full volume, normal speed.
func New() *Engine {
	return &Engine{
		IsPaused: true,
		Vol:      1,
		Rate:     1,
		events:   make(chan player.Event, 64),
		exited:   make(chan struct{}),
	}
}

// Emit publishes ev as if the engine had produced it.
func (e *Engine) Emit(ev player.Event) {
	e.events <- ev
}

// Exit ends the session.
func (e *Engine) Exit() {
	e.once.Do(func() {
		close(e.exited)
		e.events <- player.Event{Kind: player.Exited}
	})
}

// LastSeek returns the most recent seek target and whether there was one.
func (e *Engine) LastSeek() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.Seeks) == 0 {
		return 0, false
	}
	return e.Seeks[len(e.Seeks)-1], true
}

func (e *Engine) Start(_ context.Context, target string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.StartErr != nil {
		return e.StartErr
	}
	e.Target = target
	e.Started = true
	return nil
}

func (e *Engine) Events() <-chan player.Event { return e.events }
func (e *Engine) Wait() <-chan struct{}       { return e.exited }

func (e *Engine) Close() error {
	e.mu.Lock()
	e.Closed = true
	e.mu.Unlock()
	return nil
}

func (e *Engine) Position() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Pos, e.CommandErr
}

func (e *Engine) Duration() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Dur <= 0 {
		return 0, player.ErrUnavailable
	}
	return e.Dur, e.CommandErr
}

func (e *Engine) BufferedEnd() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Buffered, e.CommandErr
}

func (e *Engine) Load(target string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Loads = append(e.Loads, target)
	return e.CommandErr
}

func (e *Engine) Paused() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.IsPaused, e.CommandErr
}

func (e *Engine) Play() error {
	return e.apply(func() { e.IsPaused = false })
}

func (e *Engine) Pause() error {
	return e.apply(func() { e.IsPaused = true })
}

func (e *Engine) SeekTo(seconds float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Seeks = append(e.Seeks, seconds)
	if e.SeekErr != nil {
		return e.SeekErr
	}
	e.Pos = seconds
	return nil
}

func (e *Engine) Volume() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Vol, e.CommandErr
}

func (e *Engine) SetVolume(volume float64) error {
	return e.apply(func() { e.Vol = volume })
}

func (e *Engine) Muted() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.IsMuted, e.CommandErr
}

func (e *Engine) SetMuted(muted bool) error {
	return e.apply(func() { e.IsMuted = muted })
}

func (e *Engine) Speed() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Rate, e.CommandErr
}

func (e *Engine) SetSpeed(speed float64) error {
	return e.apply(func() { e.Rate = speed })
}

func (e *Engine) Fullscreen() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.IsFull, e.CommandErr
}

func (e *Engine) SetFullscreen(fullscreen bool) error {
	return e.apply(func() { e.IsFull = fullscreen })
}

func (e *Engine) Tracks() ([]player.Track, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.SubTracks, e.CommandErr
}

func (e *Engine) Captions() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.SubsShown, e.CommandErr
}

func (e *Engine) SetCaptions(visible bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !lo.ContainsBy(e.SubTracks, func(t player.Track) bool { return t.IsSubtitle() }) {
		return player.ErrNoCaptions
	}
	e.SubsShown = visible
	return e.CommandErr
}

func (e *Engine) PictureInPicture() error {
	return player.ErrUnsupported
}

func (e *Engine) apply(change func()) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.CommandErr != nil {
		return e.CommandErr
	}
	change()
	return nil
}

var _ player.Engine = (*Engine)(nil)
