package history

import (
	"fmt"
	"time"

	"github.com/reelctl/reelctl/position"
)

// Entry is the saved playback position of one media target.
type Entry struct {
	Target    string    `json:"target"`
	Title     string    `json:"title"`
	Position  float64   `json:"position"`
	Duration  float64   `json:"duration"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Resumable reports whether there is a position worth seeking to.
func (e *Entry) Resumable() bool {
	return e.Position > 0
}

// Progress is the watched share in percent, 0 when the duration is unknown.
func (e *Entry) Progress() float64 {
	if e.Duration <= 0 {
		return 0
	}
	return min(100, e.Position*100/e.Duration)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s  %s / %s", e.Title, position.FormatDuration(e.Position), position.FormatDuration(e.Duration))
}
