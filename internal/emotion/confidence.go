package emotion

// confidenceBoost is added when the top score is independently strong, not
// just relatively ahead of a weak second place.
const (
	confidenceBoost = 0.2
	boostThreshold  = 0.7
)

// Confidence measures how decisively one emotion dominates: the gap between
// the top two scores, boosted when the leader exceeds boostThreshold. The
// result is always in [0,1] for a normalized distribution.
func Confidence(scores Scores) float64 {
	max1, max2 := scores.topTwo()

	confidence := max1 - max2
	if max1 > boostThreshold {
		confidence = capAtOne(confidence + confidenceBoost)
	}
	return confidence
}
