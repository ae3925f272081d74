package timer

import "fmt"

// FormatDuration renders seconds as H:MM:SS. Hours are not padded.
func FormatDuration(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatHours renders seconds as decimal hours, e.g. "1.5h".
func FormatHours(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%.1fh", float64(totalSeconds)/3600)
}
