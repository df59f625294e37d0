package dataset

import (
	"strconv"
	"strings"
)

// parseFloat converts a field to a non-negative float64, treating anything
// unparsable (including the empty string) as 0.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// parseInt converts a field to a non-negative int, defaulting to 0. Values
// written as floats ("87.0") are truncated rather than rejected.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			n = int(f)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// parseBoolFlag converts a true/false platform flag to 1/0 so the flags can
// be summed across rows. Anything that is not "true" counts as 0.
func parseBoolFlag(s string) int {
	if strings.EqualFold(strings.TrimSpace(s), "true") {
		return 1
	}
	return 0
}

// parseListField parses a python-style list literal such as
// "['Action', 'Indie']" into its string items. Malformed or empty encodings
// yield an empty sequence, never an error.
func parseListField(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	inner := s[1 : len(s)-1]

	var items []string
	var cur strings.Builder
	var quote byte
	escaped := false
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		switch {
		case escaped:
			cur.WriteByte(ch)
			escaped = false
		case quote != 0 && ch == '\\':
			escaped = true
		case quote == 0 && (ch == '\'' || ch == '"'):
			quote = ch
		case ch == quote:
			items = append(items, cur.String())
			cur.Reset()
			quote = 0
		case quote != 0:
			cur.WriteByte(ch)
		}
	}
	// An unterminated quote means the literal is malformed.
	if quote != 0 {
		return nil
	}
	return items
}

// parseOwnersLowerBound extracts the lower bound from an estimated-owners
// range string like "20,000 - 50,000". The upper bound is discarded. Any
// parse failure yields 0.
func parseOwnersLowerBound(s string) int64 {
	low, _, _ := strings.Cut(s, " - ")
	low = strings.ReplaceAll(strings.TrimSpace(low), ",", "")
	n, err := strconv.ParseInt(low, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
