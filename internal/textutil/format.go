package textutil

import (
	"fmt"
	"time"
)

// HumanSize formats a byte count as a short unit-suffixed string ("1.5K").
func HumanSize(bytes int64) string {
	units := []string{"B", "K", "M", "G", "T"}
	const step = 1024.0
	val := float64(bytes)
	idx := 0
	for val >= step && idx+1 < len(units) {
		val /= step
		idx++
	}
	if idx == 0 {
		return fmt.Sprintf("%dB", bytes)
	}
	return fmt.Sprintf("%.1f%s", val, units[idx])
}

// RelativeTime formats a timestamp as a concise age relative to now, like
// "3h ago". A zero timestamp renders as "?", a future one as "just now".
func RelativeTime(t, now time.Time) string {
	const (
		justNowMax = 9 * time.Second
		month      = 30 * 24 * time.Hour
		year       = 365 * 24 * time.Hour
	)
	if t.IsZero() {
		return "?"
	}
	diff := now.Sub(t)
	switch {
	case diff <= justNowMax:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < month:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	case diff < year:
		return fmt.Sprintf("%dmo ago", int(diff/month))
	default:
		return fmt.Sprintf("%dy ago", int(diff/year))
	}
}
