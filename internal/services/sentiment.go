package services

import (
	"strings"

	"github.com/jonreiter/govader"
)

// SentimentScorer returns a compound polarity in [-1, 1].
type SentimentScorer interface {
	ScorePolarity(text string) float64
}

type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon. Build it once per process.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) ScorePolarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return s.analyzer.PolarityScores(text).Compound
}
