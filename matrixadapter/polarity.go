package matrixadapter

import (
	"strconv"
	"strings"
)

// parsePolarity parses one matrix cell. It returns isEdge=false (with a
// nil error) for an empty, whitespace-only, or zero-valued cell — "no
// edge", not a failure. A cell that parses to an integer other than ±1
// returns a non-nil error; the caller logs and skips it (CellParse is
// non-fatal).
func parsePolarity(raw string) (polarity int, isEdge bool, err error) {
	cleaned := strings.ReplaceAll(raw, " ", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" || cleaned == "0" {
		return 0, false, nil
	}

	n, convErr := strconv.Atoi(cleaned)
	if convErr != nil {
		n, convErr = strconv.Atoi(strings.TrimPrefix(cleaned, "+"))
	}
	if convErr != nil {
		return 0, false, &cellParseError{raw: raw, reason: "cannot parse as an integer"}
	}

	if n == 0 {
		return 0, false, nil
	}
	if n != 1 && n != -1 {
		return 0, false, &cellParseError{raw: raw, reason: "value is not +1 or -1"}
	}
	return n, true, nil
}

// cellParseError is an unexported detail type; callers never match on
// it directly, only log its Error() string, since CellParse never
// escapes matrixadapter as a typed error.
type cellParseError struct {
	raw    string
	reason string
}

func (e *cellParseError) Error() string {
	return "cell " + strconv.Quote(e.raw) + ": " + e.reason
}
