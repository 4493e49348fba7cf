package formatter

import "fmt"

// LiveClock renders elapsed seconds for the running display: H:MM:SS once
// an hour has passed, MM:SS before that. Negative input reads as zero.
func LiveClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// SessionDuration summarizes a just-stopped session, down to seconds when
// it was shorter than a minute.
func SessionDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FocusLabel names a 1..10 focus rating.
func FocusLabel(level int) string {
	switch {
	case level >= 9:
		return "Flow state!"
	case level >= 7:
		return "Very focused"
	case level >= 5:
		return "Good focus"
	case level >= 3:
		return "Some distractions"
	default:
		return "Distracted"
	}
}
