package render

import (
	"fmt"
	"strings"
)

// FormatDuration formats seconds as a human-readable string.
// Examples: "45s", "30m", "2h", "1h 30m"
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatHours renders seconds as decimal hours, e.g. "1.50h".
func FormatHours(seconds float64) string {
	return fmt.Sprintf("%.2fh", seconds/3600)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// Footer is the trailing count line of every text block.
// Example: "3 days"
func Footer(count int, noun string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(noun, count))
}

// FooterWithTotal adds a total duration to the count line.
// Example: "3 days, total 1h 30m"
func FooterWithTotal(count int, noun string, totalSeconds int64) string {
	return fmt.Sprintf("%s, total %s", Footer(count, noun), FormatDuration(totalSeconds))
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// Block joins lines and the footer, separated by a blank line when there are
// body lines.
func Block(lines []string, footer string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if len(lines) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(footer)
	b.WriteByte('\n')
	return b.String()
}

// Indent returns the prefix for a tree line at depth.
func Indent(depth int) string {
	return strings.Repeat("  ", depth)
}
