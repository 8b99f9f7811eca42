package emotion

import "math"

// Category is one of the five emotion labels.
type Category string

const (
	Happy    Category = "happy"
	Sad      Category = "sad"
	Angry    Category = "angry"
	Neutral  Category = "neutral"
	Surprise Category = "surprise"
)

// Categories is the fixed evaluation order. Argmax ties break toward the
// earlier entry, so the order is part of the contract.
var Categories = [5]Category{Happy, Sad, Angry, Neutral, Surprise}

// Scores is the per-category score distribution. After Normalize the values
// sum to 1.0 within floating-point tolerance.
type Scores struct {
	Happy    float64 `json:"happy"`
	Sad      float64 `json:"sad"`
	Angry    float64 `json:"angry"`
	Neutral  float64 `json:"neutral"`
	Surprise float64 `json:"surprise"`
}

// Get returns the score for a category.
func (s Scores) Get(c Category) float64 {
	switch c {
	case Happy:
		return s.Happy
	case Sad:
		return s.Sad
	case Angry:
		return s.Angry
	case Neutral:
		return s.Neutral
	case Surprise:
		return s.Surprise
	default:
		return 0
	}
}

// Sum returns the total of all five scores.
func (s Scores) Sum() float64 {
	return s.Happy + s.Sad + s.Angry + s.Neutral + s.Surprise
}

// Argmax returns the category with the highest score. Ties go to the
// category declared first in Categories.
func (s Scores) Argmax() Category {
	best := Categories[0]
	bestValue := s.Get(best)
	for _, c := range Categories[1:] {
		if v := s.Get(c); v > bestValue {
			best, bestValue = c, v
		}
	}
	return best
}

// topTwo returns the largest and second-largest scores.
func (s Scores) topTwo() (float64, float64) {
	var max1, max2 float64
	for _, c := range Categories {
		v := s.Get(c)
		switch {
		case v > max1:
			max1, max2 = v, max1
		case v > max2:
			max2 = v
		}
	}
	return max1, max2
}

// Rounded returns a copy with every score rounded to two decimals.
func (s Scores) Rounded() Scores {
	return Scores{
		Happy:    round2(s.Happy),
		Sad:      round2(s.Sad),
		Angry:    round2(s.Angry),
		Neutral:  round2(s.Neutral),
		Surprise: round2(s.Surprise),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
