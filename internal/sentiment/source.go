package sentiment

import "github.com/jonreiter/govader"

// Signals holds the per-request sentiment measurements for one text.
// Compound and Polarity are in [-1,1]; the remaining fields are in [0,1].
// The positive/negative/neutral fractions come from VADER and need not sum
// to exactly 1.
type Signals struct {
	Compound     float64
	Positive     float64
	Negative     float64
	Neutral      float64
	Polarity     float64
	Subjectivity float64
}

// Source produces Signals for normalized text. Implementations must be safe
// for concurrent use; the server shares one Source across requests.
type Source interface {
	Score(text string) (Signals, error)
}

// Analyzer is the default Source: VADER for the four-part polarity breakdown
// plus the embedded-lexicon estimator for polarity and subjectivity.
type Analyzer struct {
	vader     *govader.SentimentIntensityAnalyzer
	estimator *Estimator
}

// NewAnalyzer builds a ready-to-use Analyzer. The VADER analyzer and the
// lexicon are loaded once here and reused for every request.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vader:     govader.NewSentimentIntensityAnalyzer(),
		estimator: NewEstimator(),
	}
}

// Score implements Source.
func (a *Analyzer) Score(text string) (Signals, error) {
	scores := a.vader.PolarityScores(text)
	polarity, subjectivity := a.estimator.Estimate(text)

	return Signals{
		Compound:     scores.Compound,
		Positive:     scores.Positive,
		Negative:     scores.Negative,
		Neutral:      scores.Neutral,
		Polarity:     polarity,
		Subjectivity: subjectivity,
	}, nil
}
