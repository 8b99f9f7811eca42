package sentiment

import "strings"

// entry is a lexicon record: how favorable a word is and how opinionated
// (vs. factual) its presence makes the surrounding text.
type entry struct {
	polarity     float64
	subjectivity float64
}

// negations flip the polarity of the word that follows within negationWindow.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nor": {},
	"cannot": {}, "cant": {}, "dont": {}, "doesnt": {}, "didnt": {},
	"wont": {}, "wouldnt": {}, "isnt": {}, "arent": {}, "wasnt": {}, "werent": {},
}

// intensifiers scale the polarity and subjectivity of the word that follows.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "absolutely": 1.5,
	"totally": 1.4, "so": 1.2, "quite": 1.1, "incredibly": 1.5,
	"slightly": 0.7, "somewhat": 0.8, "barely": 0.6, "hardly": 0.6,
}

const negationWindow = 2

// Estimator scores polarity and subjectivity from an embedded lexicon.
// It is the stand-in for a full pattern-based model: average word polarity
// with negation flipping and intensifier scaling, average subjectivity over
// matched words.
type Estimator struct {
	lexicon map[string]entry
}

func NewEstimator() *Estimator {
	return &Estimator{lexicon: defaultLexicon}
}

// Estimate returns (polarity in [-1,1], subjectivity in [0,1]) for text.
// Text with no lexicon hits scores (0, 0).
func (e *Estimator) Estimate(text string) (float64, float64) {
	words := tokenize(text)

	var (
		polaritySum     float64
		subjectivitySum float64
		matched         int
	)

	for i, word := range words {
		ent, ok := e.lexicon[word]
		if !ok {
			continue
		}

		polarity := ent.polarity
		subjectivity := ent.subjectivity

		if scale, ok := precedingIntensifier(words, i); ok {
			polarity *= scale
			subjectivity *= scale
			if subjectivity > 1 {
				subjectivity = 1
			}
		}
		if negatedBefore(words, i) {
			polarity = -polarity
		}

		polaritySum += clampSigned(polarity)
		subjectivitySum += subjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return clampSigned(polaritySum / float64(matched)), subjectivitySum / float64(matched)
}

// precedingIntensifier reports the scale of an intensifier directly before
// position i, if any.
func precedingIntensifier(words []string, i int) (float64, bool) {
	if i == 0 {
		return 0, false
	}
	scale, ok := intensifiers[words[i-1]]
	return scale, ok
}

// negatedBefore reports whether a negation word appears within
// negationWindow positions before i.
func negatedBefore(words []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for _, w := range words[start:i] {
		if _, ok := negations[w]; ok {
			return true
		}
	}
	return false
}

// tokenize splits on whitespace and trims punctuation, mirroring the
// normalizer's lowercase output. Apostrophes are dropped so "don't" matches
// the "dont" negation entry.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, "!?.,;:\"()[]")
		w = strings.ReplaceAll(w, "'", "")
		w = strings.ReplaceAll(w, "’", "")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func clampSigned(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
