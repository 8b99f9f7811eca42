// Package sentiment turns normalized text into the raw polarity signals the
// emotion scorer consumes: a VADER breakdown (compound, positive, negative,
// neutral) and a lexicon-based polarity/subjectivity pair.
package sentiment
