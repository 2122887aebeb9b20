package save

import "fmt"

// TruncateURL shortens a URL for display, keeping the start and end.
func TruncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	if maxLen < 10 {
		return url[:maxLen]
	}
	head := (maxLen - 3) / 2
	tail := maxLen - 3 - head
	return url[:head] + "..." + url[len(url)-tail:]
}

// FormatBytes formats a byte count for display.
func FormatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// FormatTokens formats a token count for display.
func FormatTokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM tokens", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK tokens", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d tokens", n)
	}
}
