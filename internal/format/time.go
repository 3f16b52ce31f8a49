// Package format holds small display helpers for dg's human-readable
// output.
package format

import (
	"fmt"
	"time"
)

// DateTime formats a timestamp for cache and run listings.
// Example output: "23/01/2024 15:04"
func DateTime(t time.Time) string {
	return t.Local().Format("02/01/2006 15:04")
}

// Relative renders how long ago a timestamp was, coarsely.
// Example output: "just now", "5m ago", "3h ago", "2d ago"
func Relative(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
