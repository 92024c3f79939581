package player

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"sync"

	"github.com/reelctl/reelctl/log"
)

// observed lists the properties mpv pushes to us as property-change events.
var observed = []string{
	"time-pos",
	"duration",
	"demuxer-cache-time",
	"pause",
	"volume",
	"mute",
	"eof-reached",
}

// eventListener holds a persistent connection on which the observers are registered.
// Observers belong to the connection that created them, so they must be sent on it.
type eventListener struct {
	socketPath string
	out        chan<- Event

	mu        sync.Mutex
	conn      net.Conn
	listening bool
	done      chan struct{}
}

func newEventListener(socketPath string, out chan<- Event) *eventListener {
	return &eventListener{
		socketPath: socketPath,
		out:        out,
		done:       make(chan struct{}),
	}
}

// Start registers the observers and launches the read loop.
func (el *eventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range observed {
		if err := writeCommand(conn, int64(-(i + 1)), []interface{}{"observe_property", i + 1, name}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	go el.readLoop(conn)

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop closes the connection, which ends the read loop.
func (el *eventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}
	_ = el.conn.Close()
	el.listening = false
}

// Done is closed once the read loop has returned.
func (el *eventListener) Done() <-chan struct{} {
	return el.done
}

func (el *eventListener) readLoop(conn net.Conn) {
	defer close(el.done)

	scanner := newLineScanner(conn)
	for scanner.Scan() {
		ev, ok := translate(scanner.Bytes())
		if !ok {
			continue
		}

		select {
		case el.out <- ev:
		default:
			log.Tracef("dropping %s event, consumer is behind", ev.Kind)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Warnf("event listener read error: %v", err)
	}
}

// translate maps one line from mpv to an Event. Replies and unobserved events are skipped.
func translate(line []byte) (Event, bool) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return Event{}, false
	}

	if msg.Event != "property-change" {
		return Event{}, false
	}

	switch msg.Name {
	case "time-pos":
		return Event{Kind: TimeChanged, Value: number(msg.Data)}, true
	case "duration":
		return Event{Kind: DurationKnown, Value: number(msg.Data)}, true
	case "demuxer-cache-time":
		return Event{Kind: BufferChanged, Value: number(msg.Data)}, true
	case "pause":
		paused, _ := msg.Data.(bool)
		return Event{Kind: PlayStateChanged, Flag: paused}, true
	case "volume":
		return Event{Kind: VolumeChanged, Value: number(msg.Data) / 100}, true
	case "mute":
		muted, _ := msg.Data.(bool)
		return Event{Kind: MuteChanged, Flag: muted}, true
	case "eof-reached":
		eof, _ := msg.Data.(bool)
		if !eof {
			return Event{}, false
		}
		return Event{Kind: Ended, Flag: true}, true
	default:
		return Event{}, false
	}
}

// number converts a JSON value to float64; anything else is NaN.
func number(data interface{}) float64 {
	if f, ok := data.(float64); ok {
		return f
	}
	return math.NaN()
}
