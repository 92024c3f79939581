// Package key defines the configuration identifiers shared by viper lookups across the application.
package key

// Media Playback - these keys tune how the engine is driven and how seeking behaves.
const (
	PlayerVolume           = "player.volume"
	PlayerRate             = "player.rate"
	PlayerLiveSeek         = "player.live_seek"
	PlayerLiveSeekInterval = "player.live_seek_interval"
	PlayerSkipSmall        = "player.skip_small"
	PlayerSkipLarge        = "player.skip_large"
	PlayerMPVArgs          = "player.mpv_args"
)

// Resume History - these keys configure persistence of the last playback position.
const (
	HistoryEnable       = "history.enable"
	HistorySaveInterval = "history.save_interval"
)

// Terminal User Interface (TUI) - these keys define the control bar appearance.
const (
	TUITheme        = "tui.theme"
	TUISeekbarWidth = "tui.seekbar_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
