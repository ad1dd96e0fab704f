package reportadapter

import (
	"strconv"
	"strings"
)

// formatScore renders a float64 the way the report files expect:
// shortest round-trip representation, always with a decimal point
// (matching "0.0" rather than bare "0" for an unscored concept).
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
