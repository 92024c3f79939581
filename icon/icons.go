package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota
	Pause
	Stop
	Muted
	Volume
	Fullscreen
	Captions
	PiP
	Theme
	Seeking
	Progress
	Success
	Fail
)

var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▷ω▷)",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－ω－) zzZ",
		squares: "⏸",
	},
	Stop: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(・_・)",
		squares: "■",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "muted",
		kaomoji: "(｀ε´)",
		squares: "◻",
	},
	Volume: {
		emoji:   "🔈",
		nerd:    "",
		plain:   "vol",
		kaomoji: "(°o°)",
		squares: "◼",
	},
	Fullscreen: {
		emoji:   "⤢",
		nerd:    "",
		plain:   "fs",
		kaomoji: "(ノ°▽°)ノ",
		squares: "⬚",
	},
	Captions: {
		emoji:   "💬",
		nerd:    "",
		plain:   "cc",
		kaomoji: "(￣▽￣)ゞ",
		squares: "▤",
	},
	PiP: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "pip",
		kaomoji: "(□_□)",
		squares: "▣",
	},
	Theme: {
		emoji:   "🌓",
		nerd:    "",
		plain:   "theme",
		kaomoji: "(◐‿◑)",
		squares: "◧",
	},
	Seeking: {
		emoji:   "⏩",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(ﾉ>ω<)ﾉ",
		squares: "»",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・ ) ?",
		squares: "◫",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "▨",
	},
}
