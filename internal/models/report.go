package models

import "github.com/google/uuid"

type ShadowType string

const (
	ShadowProjected ShadowType = "Projected"
	ShadowOwned     ShadowType = "Owned"
)

type MetaphorDensity string

const (
	MetaphorLow      MetaphorDensity = "Low"
	MetaphorModerate MetaphorDensity = "Moderate"
	MetaphorHigh     MetaphorDensity = "High"
)

type Mood string

const (
	MoodElevated   Mood = "Elevated"
	MoodPositive   Mood = "Positive"
	MoodNeutral    Mood = "Flat/Neutral"
	MoodAnxious    Mood = "Anxious"
	MoodDistressed Mood = "Distressed"
)

// Observations are printed under every report. They are static text.
var Observations = []string{
	"High compression = fast integration / potential inner loops.",
	"Metaphor use = abstraction level (story-form cognition vs. literal).",
	"Shadow = how responsibility is handled (projected or integrated).",
	"Emotional tone = architecture tension.",
}

// AnswerMetrics is the per-answer breakdown behind a report.
type AnswerMetrics struct {
	Prompt      string  `json:"prompt"`
	Words       int     `json:"words"`
	Sentences   int     `json:"sentences"`
	Compression float64 `json:"compression"`
	Projective  bool    `json:"projective"`
	Owned       bool    `json:"owned"`
	Metaphor    bool    `json:"metaphor"`
}

type AnalysisReport struct {
	SubmissionId       uuid.UUID       `json:"submissionId"`
	AverageCompression float64         `json:"averageCompression"`
	ShadowType         ShadowType      `json:"shadowType"`
	MetaphorDensity    MetaphorDensity `json:"metaphorDensity"`
	Mood               Mood            `json:"mood"`

	Projective     int             `json:"projective"`
	Owned          int             `json:"owned"`
	Metaphors      int             `json:"metaphors"`
	SentimentScore float64         `json:"sentimentScore"`
	Answers        []AnswerMetrics `json:"answers"`
	Observations   []string        `json:"observations"`
}
