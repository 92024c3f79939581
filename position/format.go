package position

import (
	"fmt"
	"math"
)

// maxLabel is the longest duration two hour digits can show.
const maxLabel = 100*3600 - 1

// FormatDuration renders seconds as mm:ss, or hh:mm:ss from one hour up.
// NaN, negative and infinite values render as 00:00. Anything from 100 hours up renders as 99:59:59.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "00:00"
	}

	total := int64(math.Floor(math.Min(seconds, maxLabel)))
	hrs := total / 3600
	min := (total / 60) % 60
	sec := total % 60

	if hrs > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hrs, min, sec)
	}
	return fmt.Sprintf("%02d:%02d", min, sec)
}
