package player

import "fmt"

// EventKind enumerates the notifications an engine publishes.
type EventKind int

const (
	TimeChanged EventKind = iota
	DurationKnown
	BufferChanged
	PlayStateChanged
	VolumeChanged
	MuteChanged
	Ended
	Exited
)

func (k EventKind) String() string {
	switch k {
	case TimeChanged:
		return "time-changed"
	case DurationKnown:
		return "duration-known"
	case BufferChanged:
		return "buffer-changed"
	case PlayStateChanged:
		return "play-state-changed"
	case VolumeChanged:
		return "volume-changed"
	case MuteChanged:
		return "mute-changed"
	case Ended:
		return "ended"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a single engine notification.
// Value carries seconds or a normalized volume; it is NaN when the engine reports no value.
// Flag carries paused, muted or end-of-file state.
type Event struct {
	Kind  EventKind
	Value float64
	Flag  bool
}
