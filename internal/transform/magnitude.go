package transform

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMagnitude renders a raw numeric value as a dollar amount with a
// magnitude suffix. Thresholds are evaluated largest-first and are
// inclusive on the lower bound: exactly 1e9 formats as "B", not "M".
func FormatMagnitude(value float64) string {
	switch {
	case value >= 1e12:
		return fmt.Sprintf("$%.2fT", value/1e12)
	case value >= 1e9:
		return fmt.Sprintf("$%.2fB", value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("$%.2fM", value/1e6)
	default:
		return "$" + humanize.Comma(int64(math.Round(value)))
	}
}
