// Package ui holds small bubbletea components shared by the terminal views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Level selects how loudly a notification is drawn.
type Level int

const (
	Info Level = iota
	Warning
)

// NotifyMsg asks the notifier to show Text.
type NotifyMsg struct {
	Text  string
	Level Level
}

// ClearNotificationMsg expires the notification with the given sequence number.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a command that shows text as an informational notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text, Level: Info}
	}
}

// Warn returns a command that shows text as a warning.
func Warn(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text, Level: Warning}
	}
}

// Model shows one ephemeral notification at a time. A newer notification replaces the current one
// and restarts its lifetime.
type Model struct {
	notification NotifyMsg
	seq          int

	InfoStyle    lipgloss.Style
	WarningStyle lipgloss.Style
}

func clearAfter(seq int) tea.Cmd {
	return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Update handles NotifyMsg and ClearNotificationMsg. Other messages are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.seq++
		m.notification = msg
		return clearAfter(m.seq)
	case ClearNotificationMsg:
		// A tick from an older notification must not clear a newer one.
		if msg.seq == m.seq {
			m.notification = NotifyMsg{}
		}
	}
	return nil
}

// Current returns the text on screen, empty when nothing is shown.
func (m *Model) Current() string {
	return m.notification.Text
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification.Text == "" {
		return mainContent
	}

	s := m.InfoStyle
	if m.notification.Level == Warning {
		s = m.WarningStyle
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + s.Render(m.notification.Text)
	return strings.Join(lines, "\n")
}
