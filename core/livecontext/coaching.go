package livecontext

// Score buckets a coached volunteer message.
type Score string

const (
	ScoreGood             Score = "good"
	ScoreNeedsImprovement Score = "needs_improvement"
	ScoreCaution          Score = "caution"
)

// Coaching is one piece of per-message feedback from turn analytics.
type Coaching struct {
	Score     Score  `json:"score"`
	Feedback  string `json:"feedback"`
	Technique string `json:"technique,omitempty"`
}
