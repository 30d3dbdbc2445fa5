package utils

import (
	"github.com/charmbracelet/lipgloss"
)

// TruncateStr truncates a string to maxLen visual width using unicode ellipsis
func TruncateStr(s string, maxLen int) string {
	width := lipgloss.Width(s)
	if width <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	// Truncate rune by rune until we fit
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxLen {
			return truncated
		}
	}
	return "…"
}
