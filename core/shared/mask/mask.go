// Package mask provides masking of secrets for display and logging.
package mask

import "strings"

// Secret masks a secret for safe display. Empty values stay empty, values of
// two characters or fewer are fully masked, longer values keep only their
// first and last character.
func Secret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 2 {
		return strings.Repeat("*", len(s))
	}
	return s[:1] + "****" + s[len(s)-1:]
}
