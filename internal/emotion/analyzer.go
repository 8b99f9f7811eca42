package emotion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/singhprateek87/bhavna/internal/sentiment"
	"github.com/singhprateek87/bhavna/internal/textnorm"
)

// Result is the response payload for one analysis. Confidence and the score
// distribution are rounded to two decimals.
type Result struct {
	Emotion    Category `json:"emotion"`
	Confidence float64  `json:"confidence"`
	Scores     Scores   `json:"scores"`
}

// Analyzer runs the full classification pipeline. It holds no per-request
// state; a single instance is shared across concurrent requests.
type Analyzer struct {
	source sentiment.Source
}

// NewAnalyzer builds an Analyzer on top of the given signal source.
func NewAnalyzer(source sentiment.Source) *Analyzer {
	return &Analyzer{source: source}
}

// Analyze classifies text into one of the five emotion categories.
//
// The caller is responsible for rejecting empty or oversized input; the
// pipeline is only defined for non-empty text. A failure from the signal
// source is the only error path.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Result, error) {
	normalized := textnorm.Normalize(text)

	signals, err := a.source.Score(normalized)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment source: %w", err)
	}

	scores := Score(signals)
	result := Result{
		Emotion:    scores.Argmax(),
		Confidence: round2(Confidence(scores)),
		Scores:     scores.Rounded(),
	}

	slog.InfoContext(ctx, "Analysis result",
		"emotion", result.Emotion,
		"confidence", result.Confidence,
	)
	return result, nil
}
