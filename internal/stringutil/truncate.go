// Package stringutil provides common string manipulation utilities.
package stringutil

// Truncate shortens s to at most maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)])
	}
	return string(r[:maxLen-3]) + "..."
}

// TruncateMiddle keeps the start and end of s, which suits URLs where both
// the host and the endpoint matter.
// Example: TruncateMiddle("https://api.example.com/v1/users/12345", 29) -> "https://api.e...1/users/12345"
func TruncateMiddle(s string, maxLen int) string {
	if maxLen <= 5 {
		return Truncate(s, maxLen)
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	remaining := maxLen - 3
	startLen := remaining / 2
	endLen := remaining - startLen

	return string(r[:startLen]) + "..." + string(r[len(r)-endLen:])
}
