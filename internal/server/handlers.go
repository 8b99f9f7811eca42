package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	apperrors "github.com/singhprateek87/bhavna/internal/errors"
	"github.com/singhprateek87/bhavna/internal/metrics"
	"github.com/singhprateek87/bhavna/internal/sentiment"
	"github.com/singhprateek87/bhavna/internal/version"
)

const logPreviewLength = 50

type analyzeRequest struct {
	// Pointer so an absent key is distinguishable from an empty string.
	Text *string `json:"text"`
}

func (s *Server) handleHome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "running",
		"message": "BHAVNA Emotion Analysis API",
		"version": version.Version,
	})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil || req.Text == nil {
		return apperrors.ValidationError("Missing text field in request")
	}

	text := *req.Text
	if strings.TrimSpace(text) == "" {
		return apperrors.ValidationError("Text cannot be empty")
	}

	// Length is checked on the raw input, in characters rather than bytes.
	if utf8.RuneCountInString(text) > s.config.MaxTextLength {
		return apperrors.ValidationError(fmt.Sprintf("Text too long. Maximum %d characters.", s.config.MaxTextLength))
	}

	ctx := c.Request().Context()
	slog.InfoContext(ctx, "Analyzing text", "preview", preview(text))
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		f := sentiment.ExtractFeatures(text)
		slog.DebugContext(ctx, "Text features",
			"exclamation_marks", f.ExclamationMarks,
			"question_marks", f.QuestionMarks,
			"capitalized_words", f.CapitalizedWords,
			"word_count", f.WordCount,
		)
	}

	started := s.clock.Now()
	result, err := s.analyzer.Analyze(ctx, text)
	metrics.AnalysisDuration.Observe(s.clock.Since(started).Seconds())
	metrics.AnalyzedTextLength.Observe(float64(utf8.RuneCountInString(text)))
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("", "error").Inc()
		return apperrors.InternalError("analysis failed", err)
	}

	metrics.AnalysesTotal.WithLabelValues(string(result.Emotion), "success").Inc()
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}

// preview returns at most logPreviewLength runes of text for log lines.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= logPreviewLength {
		return text
	}
	return string(runes[:logPreviewLength]) + "..."
}
