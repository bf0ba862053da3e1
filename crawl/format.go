package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes the xxhash content hash used for pages and chunks.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatProgress renders a progress event as a one-line status message.
func FormatProgress(e ProgressEvent) string {
	switch e.Type {
	case ProgressFetched:
		return fmt.Sprintf("[%d/%d] %s (%s)", e.Visited, e.MaxPages, TruncateURL(e.URL, 60), FormatBytes(len(e.Text)))
	case ProgressEmpty:
		return fmt.Sprintf("[%d/%d] %s (no text)", e.Visited, e.MaxPages, TruncateURL(e.URL, 60))
	case ProgressFailed:
		return fmt.Sprintf("skip %s: %v", TruncateURL(e.URL, 60), e.Error)
	case ProgressFinished:
		return fmt.Sprintf("crawled %d pages", e.Visited)
	default:
		return ""
	}
}
