package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/singhprateek87/bhavna/internal/sentiment"
)

// stubSource returns canned signals and records the text it was given.
type stubSource struct {
	signals  sentiment.Signals
	err      error
	lastText string
}

func (s *stubSource) Score(text string) (sentiment.Signals, error) {
	s.lastText = text
	return s.signals, s.err
}

func TestAnalyze_HappyPath(t *testing.T) {
	source := &stubSource{signals: sentiment.Signals{
		Compound: 0.8, Positive: 0.7, Neutral: 0.3, Polarity: 0.6, Subjectivity: 0.2,
	}}
	analyzer := NewAnalyzer(source)

	result, err := analyzer.Analyze(context.Background(), "What a GREAT day!")

	require.NoError(t, err)
	assert.Equal(t, Happy, result.Emotion)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.InDelta(t, 1.0, result.Scores.Sum(), 0.03) // rounded to 2 decimals
}

func TestAnalyze_NormalizesBeforeScoring(t *testing.T) {
	source := &stubSource{}
	analyzer := NewAnalyzer(source)

	_, err := analyzer.Analyze(context.Background(), "Visit https://example.com NOW!")

	require.NoError(t, err)
	assert.Equal(t, "visit now!", source.lastText)
}

func TestAnalyze_AllNeutralSignals(t *testing.T) {
	// compound=0: no emotion gate opens; neutral term wins on (1-subjectivity)
	source := &stubSource{signals: sentiment.Signals{Neutral: 1.0, Subjectivity: 0.1}}
	analyzer := NewAnalyzer(source)

	result, err := analyzer.Analyze(context.Background(), "the sky is blue")

	require.NoError(t, err)
	assert.Equal(t, Neutral, result.Emotion)

	// raw: neutral=0.97, surprise=0.05; the normalized margin (~0.90) plus
	// the dominance boost clamps to 1.0
	assert.Equal(t, 1.0, result.Confidence)
}

func TestAnalyze_SourceFailure(t *testing.T) {
	source := &stubSource{err: errors.New("model not loaded")}
	analyzer := NewAnalyzer(source)

	_, err := analyzer.Analyze(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentiment source")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestAnalyze_ResultIsRounded(t *testing.T) {
	source := &stubSource{signals: sentiment.Signals{
		Compound: -0.5, Negative: 0.6, Neutral: 0.4, Polarity: -0.5, Subjectivity: 0.5,
	}}
	analyzer := NewAnalyzer(source)

	result, err := analyzer.Analyze(context.Background(), "so sad and angry")

	require.NoError(t, err)
	assert.Equal(t, Sad, result.Emotion)
	for _, c := range Categories {
		v := result.Scores.Get(c)
		assert.InDelta(t, v, round2(v), 1e-12, "category %s not rounded", c)
	}
	assert.InDelta(t, result.Confidence, round2(result.Confidence), 1e-12)
}
