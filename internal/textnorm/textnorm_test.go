package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("Hello WORLD"))
}

func TestNormalize_RemovesURLs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"https", "check https://example.com/page now", "check now"},
		{"http", "check http://example.com now", "check now"},
		{"www", "check www.example.com now", "check now"},
		{"url only", "https://example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_RemovesEmails(t *testing.T) {
	assert.Equal(t, "contact me at", Normalize("contact me at someone@example.com"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a \t b \n\n c  "))
}

func TestNormalize_KeepsSentimentPunctuation(t *testing.T) {
	assert.Equal(t, "wow! really? yes, fine.", Normalize("Wow! Really? Yes, fine."))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello WORLD!",
		"check https://example.com and mail me@here.com  NOW",
		"  spaced    out  text  ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestCleanAdvanced(t *testing.T) {
	assert.Equal(t, "hello! world?", CleanAdvanced("hello! #world? @"))
	assert.Equal(t, "went to the shop", CleanAdvanced("went to the shop 42"))
	assert.Equal(t, "", CleanAdvanced("***"))
}
