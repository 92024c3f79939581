// Package config holds the registry of configuration fields and the viper bootstrap.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a single configuration entry with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options restricts string fields to a fixed set when not empty.
	Options []string
}

// Env returns the environment variable bound to this field.
func (f *Field) Env() string {
	prefix := strings.ToUpper(constant.Reelctl) + "_"
	name := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

// TypeName reports the kind of value the field accepts.
func (f *Field) TypeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	}
	return "unknown"
}

// Parse converts raw CLI values into the field's type.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value for %s", f.Key)
	}

	first := strings.TrimSpace(raw[0])

	switch f.Value.(type) {
	case string:
		if len(f.Options) > 0 && !lo.Contains(f.Options, first) {
			return nil, fmt.Errorf("%s must be one of %s", f.Key, strings.Join(f.Options, ", "))
		}
		return first, nil
	case int:
		v, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", first)
		}
		return v, nil
	case float64:
		v, err := strconv.ParseFloat(first, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value: %s", first)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(first)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", first)
		}
		return v, nil
	case []string:
		return raw, nil
	}

	return nil, fmt.Errorf("unsupported type for %s", f.Key)
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	label := style.New().Foreground(color.Blue).Width(9).Render
	row := func(name, value string) string { return label(name) + value }

	rows := []string{
		style.Faint(f.Description),
		row("Key:", style.Fg(color.Purple)(f.Key)),
		row("Env:", f.Env()),
		row("Value:", highlight(viper.Get(f.Key))),
		row("Default:", highlight(f.Value)),
		row("Type:", f.TypeName()),
	}
	if len(f.Options) > 0 {
		rows = append(rows, row("Options:", strings.Join(f.Options, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return fmt.Sprint(value)
	}
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
		"type":        f.TypeName(),
		"options":     f.Options,
	})
}

var fields = []Field{
	{Key: key.PlayerVolume, Value: 100, Description: "Initial volume in percent, from 0 to 100"},
	{Key: key.PlayerRate, Value: 1.0, Description: "Initial playback rate"},
	{Key: key.PlayerLiveSeek, Value: false, Description: "Seek while dragging the seek bar instead of only on release"},
	{Key: key.PlayerLiveSeekInterval, Value: 100, Description: "Minimum milliseconds between seeks while live seeking"},
	{Key: key.PlayerSkipSmall, Value: 5, Description: "Seconds skipped by the arrow keys"},
	{Key: key.PlayerSkipLarge, Value: 10, Description: "Seconds skipped by the skip keys"},
	{Key: key.PlayerMPVArgs, Value: []string{}, Description: "Extra arguments passed to mpv.\nFlags such as --input-ipc-server are managed by reelctl"},

	{Key: key.HistoryEnable, Value: true, Description: "Remember the last position of played media"},
	{Key: key.HistorySaveInterval, Value: 5, Description: "Seconds between resume position saves"},

	{Key: key.TUITheme, Value: "dark", Description: "Control bar theme", Options: []string{"dark", "light"}},
	{Key: key.TUISeekbarWidth, Value: 0, Description: "Seek bar width in cells, 0 uses the full terminal width"},
	{Key: key.IconsVariant, Value: "plain", Description: "Icons variant. nerd requires a nerd font", Options: []string{"plain", "emoji", "nerd", "kaomoji", "squares"}},

	{Key: key.LogsWrite, Value: false, Description: "Write logs"},
	{Key: key.LogsLevel, Value: "info", Description: "Log level, from least to most verbose", Options: []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}},
	{Key: key.LogsJson, Value: false, Description: "Use json format for logs"},

	{Key: key.CliColored, Value: true, Description: "Enable colored CLI output"},
	{Key: key.CliVersionCheck, Value: true, Description: "Check for a newer release when showing help or version"},
}

// Default holds all registered configuration fields by key.
var Default = make(map[string]Field, len(fields))

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	for _, f := range fields {
		if _, dup := Default[f.Key]; dup {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
