// Package player abstracts the media engine that does the actual decoding and rendering.
// The primary implementation drives mpv through its JSON-IPC socket.
package player

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned when the engine has no value for a property yet,
	// such as the duration before metadata has loaded.
	ErrUnavailable = errors.New("property unavailable")

	// ErrUnsupported is returned for capabilities the engine does not have.
	ErrUnsupported = errors.New("not supported by this engine")

	// ErrNoCaptions is returned when captions are toggled on media without subtitle tracks.
	ErrNoCaptions = errors.New("no subtitle tracks")

	// ErrNotRunning is returned when commanding an engine that has not been started or has exited.
	ErrNotRunning = errors.New("engine is not running")
)

// Engine is the capability set reelctl needs from a media engine.
type Engine interface {
	// Start launches playback of target and begins publishing events.
	Start(ctx context.Context, target string) error

	// Events delivers engine notifications until the engine exits.
	Events() <-chan Event

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}

	// Close terminates the engine and releases its resources.
	Close() error

	Position() (float64, error)
	Duration() (float64, error)

	// BufferedEnd is the end of the last buffered range in seconds.
	BufferedEnd() (float64, error)

	// Load replaces the current media without restarting the engine.
	Load(target string) error

	Paused() (bool, error)
	Play() error
	Pause() error

	// SeekTo moves playback to an absolute position in seconds.
	SeekTo(seconds float64) error

	// Volume is normalized to [0,1].
	Volume() (float64, error)
	SetVolume(volume float64) error
	Muted() (bool, error)
	SetMuted(muted bool) error

	Speed() (float64, error)
	SetSpeed(speed float64) error

	Fullscreen() (bool, error)
	SetFullscreen(fullscreen bool) error

	Tracks() ([]Track, error)
	Captions() (bool, error)
	SetCaptions(visible bool) error

	PictureInPicture() error
}

// Track describes one audio, video or subtitle stream of the loaded media.
type Track struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Lang     string `json:"lang"`
	Selected bool   `json:"selected"`
}

// IsSubtitle reports whether the track carries captions.
func (t Track) IsSubtitle() bool {
	return t.Type == "sub"
}
