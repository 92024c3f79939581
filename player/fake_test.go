package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fakeMPV speaks enough of the mpv JSON-IPC protocol to exercise the client.
type fakeMPV struct {
	dir  string
	path string
	ln   net.Listener

	mu        sync.Mutex
	props     map[string]interface{}
	commands  [][]interface{}
	observers map[net.Conn]int
}

func newFakeMPV() *fakeMPV {
	dir, err := os.MkdirTemp("", "reelctl")
	if err != nil {
		panic(err)
	}

	path := filepath.Join(dir, "mpv.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		panic(err)
	}

	f := &fakeMPV{
		dir:       dir,
		path:      path,
		ln:        ln,
		props:     make(map[string]interface{}),
		observers: make(map[net.Conn]int),
	}
	go f.serve()
	return f
}

func (f *fakeMPV) Close() {
	_ = f.ln.Close()

	f.mu.Lock()
	for conn := range f.observers {
		_ = conn.Close()
	}
	f.mu.Unlock()

	_ = os.RemoveAll(f.dir)
}

func (f *fakeMPV) set(name string, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.props[name] = value
}

func (f *fakeMPV) get(name string) interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.props[name]
}

func (f *fakeMPV) lastCommand() []interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.commands) == 0 {
		return nil
	}
	return f.commands[len(f.commands)-1]
}

// received returns every command named name, oldest first.
func (f *fakeMPV) received(name string) [][]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out [][]interface{}
	for _, c := range f.commands {
		if len(c) > 0 && c[0] == name {
			out = append(out, c)
		}
	}
	return out
}

// observing reports how many properties are observed on the busiest connection.
func (f *fakeMPV) observing() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	most := 0
	for _, n := range f.observers {
		most = max(most, n)
	}
	return most
}

// push writes a raw line to every connection that registered observers.
func (f *fakeMPV) push(line string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.observers {
		_, _ = conn.Write([]byte(line + "\n"))
	}
}

// dropObservers closes the observer connections, as mpv does when it quits.
func (f *fakeMPV) dropObservers() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.observers {
		_ = conn.Close()
		delete(f.observers, conn)
	}
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var req ipcCommand
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			continue
		}

		data, errMsg := f.reply(conn, req.Command)

		// Broadcast noise and a stray reply ahead of the real one.
		_, _ = conn.Write([]byte(`{"event":"playback-restart"}` + "\n"))
		_, _ = conn.Write([]byte(`{"request_id":-999,"error":"success","data":"stray"}` + "\n"))

		payload, _ := json.Marshal(map[string]interface{}{
			"request_id": req.RequestID,
			"error":      errMsg,
			"data":       data,
		})

		f.mu.Lock()
		_, _ = conn.Write(append(payload, '\n'))
		f.mu.Unlock()
	}
}

func (f *fakeMPV) reply(conn net.Conn, command []interface{}) (interface{}, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.commands = append(f.commands, command)
	if len(command) == 0 {
		return nil, "invalid parameter"
	}

	switch command[0] {
	case "get_property":
		value, ok := f.props[fmt.Sprint(command[1])]
		if !ok {
			return nil, "property unavailable"
		}
		return value, "success"
	case "set_property":
		f.props[fmt.Sprint(command[1])] = command[2]
		return nil, "success"
	case "observe_property":
		f.observers[conn]++
		return nil, "success"
	default:
		return nil, "success"
	}
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// nextEvent returns the next event of kind, skipping others.
func nextEvent(events <-chan Event, kind EventKind) (Event, bool) {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Kind == kind {
				return ev, true
			}
		case <-timeout:
			return Event{}, false
		}
	}
}
