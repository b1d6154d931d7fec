package transform

import "strings"

// NoSummary is the provider's sentinel for a missing business summary.
// TruncateSummary passes it through unchanged so the presentation layer
// can render its own placeholder.
const NoSummary = "N/A"

// TruncateSummary bounds a free-text block to at most maxSentences
// sentences. Newlines are treated as spaces, sentences are split on '.',
// trimmed, and re-terminated with '.'; fewer sentences than requested are
// returned as-is. Empty input and the "N/A" sentinel pass through.
func TruncateSummary(text string, maxSentences int) string {
	if text == "" || text == NoSummary || maxSentences <= 0 {
		return text
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	parts := strings.Split(flat, ".")

	kept := make([]string, 0, maxSentences)
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		kept = append(kept, s+".")
		if len(kept) == maxSentences {
			break
		}
	}
	joined := strings.Join(kept, " ")
	return strings.ReplaceAll(joined, "..", ".")
}
