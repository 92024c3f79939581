package player

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/where"
	"github.com/samber/lo"
)

const (
	socketWaitRetries = 20
	socketWaitDelay   = 150 * time.Millisecond
	quitTimeout       = 3 * time.Second
	eventBuffer       = 64
)

// managedArgs are set by reelctl and stripped from user supplied extra arguments.
var managedArgs = []string{"--input-ipc-server", "--idle", "--no-terminal"}

// MPV implements Engine on top of mpv's JSON-IPC protocol.
type MPV struct {
	extraArgs []string

	socketPath string
	attached   bool
	cmd        *exec.Cmd
	ipc        *ipcClient
	listener   *eventListener

	events    chan Event
	exited    chan struct{}
	closeOnce sync.Once
}

// NewMPV creates an engine that will launch mpv with extraArgs appended to its own flags.
func NewMPV(extraArgs []string) *MPV {
	return &MPV{
		extraArgs: extraArgs,
		events:    make(chan Event, eventBuffer),
		exited:    make(chan struct{}),
	}
}

// Attach returns an engine for an mpv already running with --input-ipc-server=socketPath.
// Start connects instead of launching and the session ends when mpv closes the socket.
// Close leaves that mpv running.
func Attach(socketPath string) *MPV {
	m := NewMPV(nil)
	m.socketPath = socketPath
	m.attached = true
	return m
}

// Start launches mpv for target and blocks until its IPC socket accepts connections.
// An attached engine only connects, then loads target unless it is empty.
func (m *MPV) Start(ctx context.Context, target string) error {
	if m.attached {
		return m.connect(ctx, target)
	}
	return m.launch(ctx, target)
}

func (m *MPV) connect(ctx context.Context, target string) error {
	m.ipc = newIPCClient(m.socketPath)

	if err := m.waitForSocket(ctx); err != nil {
		return fmt.Errorf("attach to mpv: %w", err)
	}
	if err := m.listen(); err != nil {
		return err
	}
	log.WithField("socket", m.socketPath).Info("attached to mpv")

	go func() {
		<-m.listener.Done()
		m.markExited()
	}()

	if target == "" {
		return nil
	}
	return m.Load(target)
}

func (m *MPV) launch(ctx context.Context, target string) error {
	safeTarget, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	m.socketPath = filepath.Join(where.Sockets(), fmt.Sprintf("%s-%s.sock", constant.Reelctl, uuid.NewString()))
	m.ipc = newIPCClient(m.socketPath)

	m.cmd = exec.Command(constant.MPV, buildArgs(m.socketPath, safeTarget, m.extraArgs)...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}
	log.WithField("socket", m.socketPath).Infof("mpv started for %s", safeTarget)

	// Reap the process to prevent zombies.
	go func() {
		_ = m.cmd.Wait()
		m.markExited()
	}()

	if err := m.waitForSocket(ctx); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return m.listen()
}

func (m *MPV) listen() error {
	m.listener = newEventListener(m.socketPath, m.events)
	return m.listener.Start()
}

// markExited closes the exit channel and publishes Exited exactly once.
func (m *MPV) markExited() {
	m.closeOnce.Do(func() {
		close(m.exited)
		select {
		case m.events <- Event{Kind: Exited}:
		case <-time.After(time.Second):
			log.Warn("exit event not consumed")
		}
	})
}

func (m *MPV) waitForSocket(ctx context.Context) error {
	for i := 0; i < socketWaitRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		case <-time.After(socketWaitDelay):
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Events delivers engine notifications. Events are dropped when the consumer falls behind.
func (m *MPV) Events() <-chan Event {
	return m.events
}

// Wait returns a channel that is closed when mpv exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Close asks mpv to quit, kills it if it does not, and removes the socket.
func (m *MPV) Close() error {
	if m.listener != nil {
		m.listener.Stop()
	}

	if m.cmd == nil {
		return nil
	}

	_, _ = m.command("quit")

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) Position() (float64, error) {
	return m.getFloat("time-pos")
}

func (m *MPV) Duration() (float64, error) {
	return m.getFloat("duration")
}

// BufferedEnd reads the demuxer cache end, which is where the buffered range stops.
func (m *MPV) BufferedEnd() (float64, error) {
	return m.getFloat("demuxer-cache-time")
}

func (m *MPV) Paused() (bool, error) {
	return m.getBool("pause")
}

func (m *MPV) Play() error {
	return m.set("pause", false)
}

func (m *MPV) Pause() error {
	return m.set("pause", true)
}

// Load replaces the current media with target.
func (m *MPV) Load(target string) error {
	safeTarget, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	_, err = m.command("loadfile", safeTarget, "replace")
	return err
}

func (m *MPV) SeekTo(seconds float64) error {
	_, err := m.command("seek", seconds, "absolute")
	return err
}

func (m *MPV) Volume() (float64, error) {
	v, err := m.getFloat("volume")
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

func (m *MPV) SetVolume(volume float64) error {
	return m.set("volume", volume*100)
}

func (m *MPV) Muted() (bool, error) {
	return m.getBool("mute")
}

func (m *MPV) SetMuted(muted bool) error {
	return m.set("mute", muted)
}

func (m *MPV) Speed() (float64, error) {
	return m.getFloat("speed")
}

func (m *MPV) SetSpeed(speed float64) error {
	return m.set("speed", speed)
}

func (m *MPV) Fullscreen() (bool, error) {
	return m.getBool("fullscreen")
}

func (m *MPV) SetFullscreen(fullscreen bool) error {
	return m.set("fullscreen", fullscreen)
}

// Tracks lists the streams of the loaded media.
func (m *MPV) Tracks() ([]Track, error) {
	data, err := m.command("get_property", "track-list")
	if err != nil {
		return nil, err
	}

	raw, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("property track-list: expected array, got %T", data)
	}

	return lo.FilterMap(raw, func(item interface{}, _ int) (Track, bool) {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return Track{}, false
		}

		t := Track{}
		if id, ok := fields["id"].(float64); ok {
			t.ID = int(id)
		}
		t.Type, _ = fields["type"].(string)
		t.Title, _ = fields["title"].(string)
		t.Lang, _ = fields["lang"].(string)
		t.Selected, _ = fields["selected"].(bool)
		return t, true
	}), nil
}

// Captions reports whether subtitles are currently shown.
func (m *MPV) Captions() (bool, error) {
	return m.getBool("sub-visibility")
}

// SetCaptions shows or hides subtitles. A subtitle track is selected first if none is.
func (m *MPV) SetCaptions(visible bool) error {
	tracks, err := m.Tracks()
	if err != nil {
		return err
	}

	subs := lo.Filter(tracks, func(t Track, _ int) bool { return t.IsSubtitle() })
	if len(subs) == 0 {
		return ErrNoCaptions
	}

	if visible && !lo.ContainsBy(subs, func(t Track) bool { return t.Selected }) {
		if err := m.set("sid", subs[0].ID); err != nil {
			return err
		}
	}

	return m.set("sub-visibility", visible)
}

// PictureInPicture is not available in mpv.
func (m *MPV) PictureInPicture() error {
	return ErrUnsupported
}

func (m *MPV) command(args ...interface{}) (interface{}, error) {
	if m.ipc == nil {
		return nil, ErrNotRunning
	}
	return m.ipc.command(args...)
}

func (m *MPV) set(property string, value interface{}) error {
	_, err := m.command("set_property", property, value)
	return err
}

func (m *MPV) getFloat(name string) (float64, error) {
	data, err := m.command("get_property", name)
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: %w", name, ErrUnavailable)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

func (m *MPV) getBool(name string) (bool, error) {
	data, err := m.command("get_property", name)
	if err != nil {
		return false, err
	}

	val, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("property %s: expected bool, got %T", name, data)
	}

	return val, nil
}

// buildArgs assembles the mpv command line. User arguments cannot override the IPC setup.
func buildArgs(socketPath, target string, extra []string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socketPath),
		"--force-window=yes",
		"--idle=yes",
	}

	for _, arg := range extra {
		if lo.ContainsBy(managedArgs, func(managed string) bool {
			return arg == managed || strings.HasPrefix(arg, managed+"=")
		}) {
			log.Warnf("ignoring managed mpv argument %s", arg)
			continue
		}
		args = append(args, arg)
	}

	// Everything after -- is a file, never an option.
	return append(args, "--", target)
}

// sanitizeMediaTarget validates that a target is safe to pass to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("target must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}
