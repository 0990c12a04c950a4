package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/latestcomment/mind-mirror/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTokenizer counts whitespace-separated words and terminal punctuation
// marks, unless the text has an explicit entry in counts.
type fakeTokenizer struct {
	counts map[string]TokenCounts
	err    error
}

func (f *fakeTokenizer) Tokenize(text string) (TokenCounts, error) {
	if f.err != nil {
		return TokenCounts{}, f.err
	}
	if c, ok := f.counts[text]; ok {
		return c, nil
	}
	return TokenCounts{
		Words:     len(strings.Fields(text)),
		Sentences: strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?"),
	}, nil
}

type fixedScorer float64

func (s fixedScorer) ScorePolarity(string) float64 { return float64(s) }

func newTestAnalyzer(tok Tokenizer, score float64) *AnalyzerService {
	return NewAnalyzerService(models.DefaultQuestionSet(), tok, fixedScorer(score), zap.NewNop())
}

// emptyResponses returns a complete ResponseMap with every answer blank.
func emptyResponses() models.ResponseMap {
	rm := models.ResponseMap{}
	for _, p := range models.DefaultQuestionSet().Prompts() {
		rm[p] = ""
	}
	return rm
}

// withAnswers fills the first len(answers) prompts in order.
func withAnswers(answers ...string) models.ResponseMap {
	rm := emptyResponses()
	for i, p := range models.DefaultQuestionSet().Prompts() {
		if i >= len(answers) {
			break
		}
		rm[p] = answers[i]
	}
	return rm
}

func TestAnalyze_AllEmpty(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)

	report, err := a.Analyze(emptyResponses(), "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.AverageCompression)
	assert.Equal(t, models.ShadowOwned, report.ShadowType)
	assert.Equal(t, models.MetaphorLow, report.MetaphorDensity)
	assert.Equal(t, models.MoodNeutral, report.Mood)
	assert.Len(t, report.Answers, 13)
	assert.Equal(t, models.Observations, report.Observations)
	for _, m := range report.Answers {
		assert.Equal(t, 0.0, m.Compression, m.Prompt)
	}
}

func TestAnalyze_ProjectiveOwnedTieIsOwned(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)

	report, err := a.Analyze(withAnswers(
		"They always think I'm fine.",
		"I know I tend to overthink.",
	), "")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Projective)
	assert.Equal(t, 1, report.Owned, "markers count once per answer")
	assert.Equal(t, models.ShadowOwned, report.ShadowType)
}

func TestAnalyze_ProjectedWhenProjectiveDominates(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)

	report, err := a.Analyze(withAnswers(
		"They always expect more.",
		"EVERYONE THINKS I'm calm.",
		"I know what I want.",
	), "")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Projective)
	assert.Equal(t, 1, report.Owned)
	assert.Equal(t, models.ShadowProjected, report.ShadowType)
}

func TestAnalyze_OwnedMarkersIgnoreCaseAndApostropheStyle(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)

	report, err := a.Analyze(withAnswers(
		"I’ve learned to wait.",
		"I've Learned nothing.",
		"i TEND TO hide.",
	), "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Owned)
	assert.True(t, report.Answers[0].Owned)
	assert.True(t, report.Answers[1].Owned)
	assert.True(t, report.Answers[2].Owned)
}

func TestAnalyze_MetaphorDensity(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    models.MetaphorDensity
	}{
		{"none", nil, models.MetaphorLow},
		{"one", []string{"It feels like fog."}, models.MetaphorLow},
		{"two", []string{"Like a river.", "As if nothing happened."}, models.MetaphorModerate},
		{"three", []string{"like rain", "as if", "like glass"}, models.MetaphorModerate},
		{"four", []string{"like rain", "as if", "like glass", "Like wind"}, models.MetaphorHigh},
		{"twice in one answer counts once", []string{"like this, like that"}, models.MetaphorLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(&fakeTokenizer{}, 0)
			report, err := a.Analyze(withAnswers(tt.answers...), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.MetaphorDensity)
		})
	}
}

func TestClassifyMetaphorDensity(t *testing.T) {
	want := []models.MetaphorDensity{
		models.MetaphorLow, models.MetaphorLow,
		models.MetaphorModerate, models.MetaphorModerate,
		models.MetaphorHigh, models.MetaphorHigh, models.MetaphorHigh,
	}
	for n, w := range want {
		assert.Equal(t, w, classifyMetaphorDensity(n), "count %d", n)
	}
}

func TestClassifyShadow(t *testing.T) {
	assert.Equal(t, models.ShadowOwned, classifyShadow(0, 0))
	assert.Equal(t, models.ShadowOwned, classifyShadow(2, 2))
	assert.Equal(t, models.ShadowOwned, classifyShadow(1, 3))
	assert.Equal(t, models.ShadowProjected, classifyShadow(3, 2))
}

func TestClassifyMood(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Mood
	}{
		{1, models.MoodElevated},
		{0.5, models.MoodElevated},
		{0.49, models.MoodPositive},
		{0.11, models.MoodPositive},
		{0.1, models.MoodNeutral},
		{0, models.MoodNeutral},
		{-0.1, models.MoodNeutral},
		{-0.11, models.MoodAnxious},
		{-0.5, models.MoodAnxious},
		{-0.51, models.MoodDistressed},
		{-0.6, models.MoodDistressed},
		{-1, models.MoodDistressed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyMood(tt.score), "score %v", tt.score)
	}
}

func TestAnalyze_MoodFromFreeWriteOnly(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0.72)

	report, err := a.Analyze(emptyResponses(), "I feel wonderful today")
	require.NoError(t, err)

	assert.Equal(t, 0.72, report.SentimentScore)
	assert.Equal(t, models.MoodElevated, report.Mood)
}

func TestCompressionScore(t *testing.T) {
	tests := []struct {
		counts TokenCounts
		want   float64
	}{
		{TokenCounts{}, 0},
		{TokenCounts{Words: 0, Sentences: 2}, 0},
		{TokenCounts{Words: 1, Sentences: 1}, 1},
		{TokenCounts{Words: 3, Sentences: 1}, 0.33},
		{TokenCounts{Words: 6, Sentences: 1}, 0.17},
		{TokenCounts{Words: 8, Sentences: 1}, 0.12},
		{TokenCounts{Words: 10, Sentences: 3}, 0.3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compressionScore(tt.counts), "%+v", tt.counts)
	}
}

func TestAnalyze_AverageCompressionUsesAllThirteen(t *testing.T) {
	tok := &fakeTokenizer{counts: map[string]TokenCounts{
		"short":  {Words: 1, Sentences: 1},
		"longer": {Words: 3, Sentences: 1},
	}}
	a := newTestAnalyzer(tok, 0)

	// (1 + 0.33) / 13 = 0.1023
	report, err := a.Analyze(withAnswers("short", "longer"), "")
	require.NoError(t, err)
	assert.Equal(t, 0.1, report.AverageCompression)

	all := emptyResponses()
	for p := range all {
		all[p] = "short"
	}
	report, err = a.Analyze(all, "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, report.AverageCompression)
}

func TestAnalyze_MissingInput(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)
	rm := emptyResponses()
	missing := a.Questions.Prompts()[7]
	delete(rm, missing)

	_, err := a.Analyze(rm, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingInput))
	assert.Contains(t, err.Error(), missing)

	_, err = a.Analyze(nil, "")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestAnalyze_UnknownPrompt(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)
	rm := emptyResponses()
	rm["What is your favourite colour?"] = "blue"

	_, err := a.Analyze(rm, "")
	assert.ErrorIs(t, err, ErrUnknownPrompt)
}

func TestAnalyze_TokenizerError(t *testing.T) {
	boom := errors.New("boom")
	a := newTestAnalyzer(&fakeTokenizer{err: boom}, 0)

	_, err := a.Analyze(emptyResponses(), "")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrMissingInput))
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, -0.3)
	rm := withAnswers(
		"They always leave. Like clockwork.",
		"I know.",
		"As if it mattered!",
	)

	first, err := a.Analyze(rm, "I keep worrying")
	require.NoError(t, err)
	second, err := a.Analyze(rm, "I keep worrying")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reports differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, uuid.Nil, first.SubmissionId)
	assert.Equal(t, models.MoodAnxious, first.Mood)
}

func TestAnalyzeSubmission_StampsID(t *testing.T) {
	a := newTestAnalyzer(&fakeTokenizer{}, 0)
	sub := models.NewSubmission(withAnswers("I know."), "")

	report, err := a.AnalyzeSubmission(sub)
	require.NoError(t, err)
	assert.Equal(t, sub.Id, report.SubmissionId)

	plain, err := a.Analyze(sub.Responses, sub.FreeWrite)
	require.NoError(t, err)
	ignoreID := cmpopts.IgnoreFields(models.AnalysisReport{}, "SubmissionId")
	if diff := cmp.Diff(plain, report, ignoreID); diff != "" {
		t.Errorf("stamped report differs (-plain +stamped):\n%s", diff)
	}

	_, err = a.AnalyzeSubmission(models.NewSubmission(models.ResponseMap{}, ""))
	assert.ErrorIs(t, err, ErrMissingInput)
}
