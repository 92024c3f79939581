package tui

type state int

const (
	loadingState state = iota
	playingState
	errorState
)

func (s state) String() string {
	switch s {
	case loadingState:
		return "loading"
	case playingState:
		return "playing"
	case errorState:
		return "error"
	default:
		return "unknown"
	}
}
