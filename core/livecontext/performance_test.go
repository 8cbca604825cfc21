package livecontext

import "testing"

func TestSummarizeCountsScoresAndTechniques(t *testing.T) {
	log := []Coaching{
		{Score: ScoreGood, Feedback: "f", Technique: "reflection"},
		{Score: ScoreGood, Feedback: "f", Technique: "reflection"},
		{Score: ScoreNeedsImprovement, Feedback: "f", Technique: "open question"},
		{Score: ScoreCaution, Feedback: "f"},
	}

	summary := Summarize(log)

	if summary.Exchanges != 4 {
		t.Fatalf("expected 4 exchanges, got %d", summary.Exchanges)
	}
	if summary.Good != 2 || summary.NeedsImprovement != 1 || summary.Caution != 1 {
		t.Fatalf("unexpected score counts: %+v", summary)
	}
	if len(summary.Techniques) != 2 {
		t.Fatalf("expected 2 techniques, got %v", summary.Techniques)
	}
	if summary.Techniques[0].Technique != "reflection" || summary.Techniques[0].Count != 2 {
		t.Fatalf("expected most used technique first, got %v", summary.Techniques)
	}
}

func TestSummarizeCapsReportedTechniques(t *testing.T) {
	log := make([]Coaching, 0, 7)
	for _, technique := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		log = append(log, Coaching{Score: ScoreGood, Feedback: "f", Technique: technique})
	}

	summary := Summarize(log)

	if len(summary.Techniques) != maxReportedTechniques {
		t.Fatalf("expected technique list capped at %d, got %d", maxReportedTechniques, len(summary.Techniques))
	}
}

func TestSummarizeTiesBreakAlphabetically(t *testing.T) {
	log := []Coaching{
		{Score: ScoreGood, Feedback: "f", Technique: "validation"},
		{Score: ScoreGood, Feedback: "f", Technique: "grounding"},
	}

	summary := Summarize(log)

	if summary.Techniques[0].Technique != "grounding" {
		t.Fatalf("expected alphabetical order on equal counts, got %v", summary.Techniques)
	}
}

func TestPercent(t *testing.T) {
	summary := PerformanceSummary{Exchanges: 3}
	if got := summary.Percent(2); got != 67 {
		t.Fatalf("expected rounded percentage 67, got %d", got)
	}
	if got := (PerformanceSummary{}).Percent(1); got != 0 {
		t.Fatalf("expected zero exchanges to yield 0, got %d", got)
	}
}
