package domain

import "strings"

const (
	CommaDelimiter   = ","
	NewlineDelimiter = "\n"
)

// SplitDelimited splits raw form text on sep, trims every entry and drops
// the empty ones. The result is never nil.
func SplitDelimited(raw, sep string) []string {
	out := make([]string, 0, 8)
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinDelimited is the reverse of SplitDelimited, used to repopulate a form.
// Comma lists are joined with ", " to read naturally.
func JoinDelimited(items []string, sep string) string {
	if sep == CommaDelimiter {
		return strings.Join(items, ", ")
	}
	return strings.Join(items, sep)
}

// SplitComma is SplitDelimited for techStack and technologies.
func SplitComma(raw string) []string {
	return SplitDelimited(raw, CommaDelimiter)
}

// SplitLines is SplitDelimited for keyFeatures. Carriage returns from
// browser textareas are dropped by the trim.
func SplitLines(raw string) []string {
	return SplitDelimited(raw, NewlineDelimiter)
}
