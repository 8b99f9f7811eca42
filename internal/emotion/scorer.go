package emotion

import (
	"math"

	"github.com/singhprateek87/bhavna/internal/sentiment"
)

// Deadband thresholds gating the polarity-driven emotions. Weak compound
// signals must not inflate categories they barely support, so each emotion
// only activates past its cutoff. The exact values are part of the scoring
// contract; changing them changes every downstream distribution.
const (
	happyGate = 0.05
	sadGate   = -0.05
	angryGate = -0.3
)

// Score maps sentiment signals to the five-way emotion distribution.
//
// Each category is a clamped linear blend of the inputs; happy, sad and angry
// are additionally gated on the compound score, while neutral and surprise
// are always on. The raw values are then normalized to sum to 1.0. If every
// term evaluates to zero the distribution collapses to pure neutral.
//
// Inputs are assumed to be finite and within their documented ranges; the
// scorer does not defend against an out-of-range signal source.
func Score(signals sentiment.Signals) Scores {
	var s Scores

	if signals.Compound > happyGate {
		s.Happy = capAtOne(signals.Positive*0.7 + (signals.Polarity+1)/2*0.3)
	}
	if signals.Compound < sadGate {
		s.Sad = capAtOne(signals.Negative*0.6 + (1-(signals.Polarity+1)/2)*0.4)
	}
	if signals.Compound < angryGate {
		s.Angry = capAtOne(signals.Negative*0.8 + signals.Subjectivity*0.2)
	}
	s.Neutral = capAtOne(signals.Neutral*0.7 + (1-signals.Subjectivity)*0.3)
	s.Surprise = capAtOne(signals.Subjectivity * 0.5)

	return normalize(s)
}

// normalize scales the distribution to sum to 1.0. Each term is already
// clamped to [0,1] before summation, so the sum cannot be negative; the only
// degenerate case is an all-zero distribution, which becomes pure neutral.
func normalize(s Scores) Scores {
	total := s.Sum()
	if total == 0 {
		return Scores{Neutral: 1}
	}
	return Scores{
		Happy:    s.Happy / total,
		Sad:      s.Sad / total,
		Angry:    s.Angry / total,
		Neutral:  s.Neutral / total,
		Surprise: s.Surprise / total,
	}
}

// capAtOne applies the per-term upper clamp; terms are non-negative for
// in-range signals, so no lower bound is needed.
func capAtOne(v float64) float64 {
	return math.Min(1, v)
}
