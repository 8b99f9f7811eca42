// Package textnorm prepares raw text for sentiment scoring. Normalization
// keeps the punctuation the scorers care about (!?.,) and is idempotent.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`https?://\S+|http\S+|www\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	spacePattern = regexp.MustCompile(`\s+`)

	specialPattern = regexp.MustCompile(`[^\w\s!?.,]`)
	digitPattern   = regexp.MustCompile(`\d+`)
)

// Normalize lowercases text, removes URL-like and email-like tokens, and
// collapses whitespace runs to single spaces. Empty input yields empty output.
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanAdvanced strips everything except word characters, whitespace and the
// sentiment-bearing punctuation, then drops digits. Not part of the analyze
// pipeline; exposed for callers that want aggressively cleaned text.
func CleanAdvanced(raw string) string {
	text := specialPattern.ReplaceAllString(raw, "")
	text = digitPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
