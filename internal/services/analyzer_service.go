package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/latestcomment/mind-mirror/internal/models"
	"go.uber.org/zap"
)

var (
	ErrMissingInput  = errors.New("missing answer for prompt")
	ErrUnknownPrompt = errors.New("prompt is not part of the questionnaire")
)

var (
	projectiveMarkers = []string{"they always", "everyone thinks"}
	ownedMarkers      = []string{"i know", "i tend to", "i've learned"}
	metaphorMarkers   = []string{"like", "as if"}
)

// AnalyzerService turns a submission into an AnalysisReport. It holds no
// per-submission state and is safe to share between requests.
type AnalyzerService struct {
	Questions *models.QuestionSet
	tokenizer Tokenizer
	scorer    SentimentScorer
	logger    *zap.Logger
}

func NewAnalyzerService(questions *models.QuestionSet, tokenizer Tokenizer, scorer SentimentScorer, logger *zap.Logger) *AnalyzerService {
	return &AnalyzerService{
		Questions: questions,
		tokenizer: tokenizer,
		scorer:    scorer,
		logger:    logger,
	}
}

// Analyze scores every answer and the free-write. responses must hold exactly
// the prompts of the question set. The result depends only on its inputs;
// SubmissionId is left zero.
func (s *AnalyzerService) Analyze(responses models.ResponseMap, freeWrite string) (*models.AnalysisReport, error) {
	if err := s.validate(responses); err != nil {
		return nil, err
	}

	report := &models.AnalysisReport{
		Observations: models.Observations,
	}

	total := 0.0
	for _, prompt := range s.Questions.Prompts() {
		m, err := s.measure(prompt, responses[prompt])
		if err != nil {
			return nil, err
		}
		total += m.Compression
		if m.Projective {
			report.Projective++
		}
		if m.Owned {
			report.Owned++
		}
		if m.Metaphor {
			report.Metaphors++
		}
		report.Answers = append(report.Answers, m)
	}

	report.AverageCompression = round2(total / float64(s.Questions.Len()))
	report.ShadowType = classifyShadow(report.Projective, report.Owned)
	report.MetaphorDensity = classifyMetaphorDensity(report.Metaphors)

	report.SentimentScore = s.scorer.ScorePolarity(freeWrite)
	report.Mood = ClassifyMood(report.SentimentScore)
	return report, nil
}

// AnalyzeSubmission runs Analyze and stamps the report with the submission's
// ID.
func (s *AnalyzerService) AnalyzeSubmission(sub *models.Submission) (*models.AnalysisReport, error) {
	report, err := s.Analyze(sub.Responses, sub.FreeWrite)
	if err != nil {
		return nil, err
	}
	report.SubmissionId = sub.Id

	s.logger.Info("submission analyzed",
		zap.String("submission", sub.Id.String()),
		zap.Float64("compression", report.AverageCompression),
		zap.String("shadow", string(report.ShadowType)),
		zap.String("metaphor", string(report.MetaphorDensity)),
		zap.String("mood", string(report.Mood)),
	)
	return report, nil
}

func (s *AnalyzerService) validate(responses models.ResponseMap) error {
	for _, prompt := range s.Questions.Prompts() {
		if _, ok := responses[prompt]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingInput, prompt)
		}
	}
	for prompt := range responses {
		if !s.Questions.Contains(prompt) {
			return fmt.Errorf("%w: %q", ErrUnknownPrompt, prompt)
		}
	}
	return nil
}

func (s *AnalyzerService) measure(prompt, answer string) (models.AnswerMetrics, error) {
	counts, err := s.tokenizer.Tokenize(answer)
	if err != nil {
		return models.AnswerMetrics{}, fmt.Errorf("tokenize answer to %q: %w", prompt, err)
	}

	folded := foldAnswer(answer)
	return models.AnswerMetrics{
		Prompt:      prompt,
		Words:       counts.Words,
		Sentences:   counts.Sentences,
		Compression: compressionScore(counts),
		Projective:  containsAny(folded, projectiveMarkers),
		Owned:       containsAny(folded, ownedMarkers),
		Metaphor:    containsAny(folded, metaphorMarkers),
	}, nil
}

// compressionScore is sentences per word, 0 for an answer with no words.
func compressionScore(c TokenCounts) float64 {
	if c.Words == 0 {
		return 0
	}
	return round2(float64(c.Sentences) / float64(c.Words))
}

func classifyShadow(projective, owned int) models.ShadowType {
	if projective > owned {
		return models.ShadowProjected
	}
	return models.ShadowOwned
}

func classifyMetaphorDensity(count int) models.MetaphorDensity {
	switch {
	case count >= 4:
		return models.MetaphorHigh
	case count >= 2:
		return models.MetaphorModerate
	default:
		return models.MetaphorLow
	}
}

// ClassifyMood buckets a compound polarity score. Order matters: the
// negative checks run strongest first.
func ClassifyMood(score float64) models.Mood {
	switch {
	case score >= 0.5:
		return models.MoodElevated
	case score > 0.1:
		return models.MoodPositive
	case score < -0.5:
		return models.MoodDistressed
	case score < -0.1:
		return models.MoodAnxious
	default:
		return models.MoodNeutral
	}
}

// foldAnswer lowercases and replaces typographic apostrophes so "I’ve" and
// "I've" match the same marker.
func foldAnswer(answer string) string {
	return strings.ReplaceAll(strings.ToLower(answer), "’", "'")
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
