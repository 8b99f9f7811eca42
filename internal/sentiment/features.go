package sentiment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Features captures surface cues that are lost after normalization, so they
// are extracted from the raw text before the pipeline lowercases it.
type Features struct {
	ExclamationMarks int
	QuestionMarks    int
	CapitalizedWords int
	TextLength       int
	WordCount        int
}

// ExtractFeatures counts punctuation and shouting cues in raw text.
// CapitalizedWords counts all-caps words longer than one rune.
func ExtractFeatures(text string) Features {
	words := strings.Fields(text)

	capitalized := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 && isUpper(w) {
			capitalized++
		}
	}

	return Features{
		ExclamationMarks: strings.Count(text, "!"),
		QuestionMarks:    strings.Count(text, "?"),
		CapitalizedWords: capitalized,
		TextLength:       utf8.RuneCountInString(text),
		WordCount:        len(words),
	}
}

// isUpper reports whether w contains at least one letter and no lowercase
// letters.
func isUpper(w string) bool {
	hasLetter := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
