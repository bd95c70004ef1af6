package review

import "strings"

// Normalize produces the canonical form of a suggestion used for
// deduplication, blocklist matching, and similar-group clustering:
// lowercased, trimmed, inner whitespace collapsed to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
