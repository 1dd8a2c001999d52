// Package qnum guesses a question label from free-form analysis text.
package qnum

import "regexp"

// Patterns are tried strictly in order; the first one that matches anywhere
// in the text wins, even if a later pattern would match earlier in the string.
var patterns = []*regexp.Regexp{
	// Q1, Question 2, Q.1, Q1a
	regexp.MustCompile(`(?i)Q(?:uestion)?\s*\.?\s*(\d+[a-z]?)`),
	// 1., 1), 1a.
	regexp.MustCompile(`(?i)(?:^|\s)(\d+[a-z]?)[\.\)]`),
	// a., a), b.
	regexp.MustCompile(`(?i)(?:^|\s)([a-z][\.\)])(?:\s|$)`),
}

// Extract returns the captured question token from text, or ok=false when no
// pattern matches. Captures are returned as-is, without cleanup.
func Extract(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}
