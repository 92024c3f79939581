package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

// ipcMessage is any line mpv writes: a command reply or a broadcast event.
type ipcMessage struct {
	Data      interface{} `json:"data"`
	Error     string      `json:"error"`
	RequestID *int64      `json:"request_id"`
	Event     string      `json:"event"`
	Name      string      `json:"name"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
	maxLineSize  = 1 << 20
)

// ipcClient issues one-shot request/response commands over fresh connections.
type ipcClient struct {
	socketPath string
	nextID     atomic.Int64
	mu         sync.Mutex
}

func newIPCClient(socketPath string) *ipcClient {
	return &ipcClient{socketPath: socketPath}
}

// command sends a JSON-IPC command, retrying transient connection failures.
// Errors reported by mpv itself are not retried.
func (c *ipcClient) command(args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		result, err := c.send(args)
		if err == nil {
			return result, nil
		}

		var mpvErr *mpvError
		if errors.As(err, &mpvErr) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

func (c *ipcClient) send(args []interface{}) (interface{}, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	id := c.nextID.Add(1)
	if err := writeCommand(conn, id, args); err != nil {
		return nil, err
	}

	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	scanner := newLineScanner(conn)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}

		// mpv broadcasts events to every client; skip them while waiting for our reply.
		if msg.Event != "" || msg.RequestID == nil || *msg.RequestID != id {
			continue
		}

		if err := replyError(msg.Error); err != nil {
			return nil, err
		}
		return msg.Data, nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return nil, errors.New("read: connection closed before reply")
}

func writeCommand(conn net.Conn, id int64, args []interface{}) error {
	payload, err := json.Marshal(ipcCommand{Command: args, RequestID: id})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	// mpv requires newline-delimited JSON
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func newLineScanner(conn net.Conn) *bufio.Scanner {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return scanner
}

// mpvError is an error reported by mpv in a reply, as opposed to a transport failure.
type mpvError struct {
	msg string
}

func (e *mpvError) Error() string {
	return "mpv error: " + e.msg
}

func (e *mpvError) Unwrap() error {
	if e.msg == ErrUnavailable.Error() {
		return ErrUnavailable
	}
	return nil
}

func replyError(msg string) error {
	if msg == "" || msg == "success" {
		return nil
	}
	return &mpvError{msg: msg}
}
