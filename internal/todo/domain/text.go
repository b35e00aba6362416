package domain

import "strings"

// IsBlank reports whether s is empty or whitespace only. Required text
// fields (titles, descriptions, usernames, display names) treat a blank
// value as missing. Stored values are kept as sent.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
