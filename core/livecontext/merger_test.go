package livecontext

import "testing"

func TestMergerAppliesContextWholesale(t *testing.T) {
	merger := NewMerger()

	merger.Apply(Context{
		RiskLevel: RiskModerate,
		Triggers:  []string{"anniversary"},
		KeyFacts:  []string{"has a dog"},
	})
	merger.Apply(Context{
		RiskLevel:   RiskLow,
		CurrentMood: "calmer",
	})

	current := merger.Current()
	if current == nil {
		t.Fatalf("expected a current context")
	}
	if current.CurrentMood != "calmer" || current.RiskLevel != RiskLow {
		t.Fatalf("expected latest snapshot, got %+v", current)
	}
	if len(current.Triggers) != 0 || len(current.KeyFacts) != 0 {
		t.Fatalf("expected wholesale replacement, fields leaked from prior snapshot: %+v", current)
	}
}

func TestMergerRiskHistoryGrowsPerKnownLevel(t *testing.T) {
	merger := NewMerger()

	merger.Apply(Context{RiskLevel: RiskLow})
	merger.Apply(Context{RiskLevel: RiskUnknown})
	merger.Apply(Context{RiskLevel: "nonsense"})
	merger.Apply(Context{RiskLevel: RiskHigh})

	history := merger.RiskHistory()
	if len(history) != 2 {
		t.Fatalf("expected only known levels recorded, got %v", history)
	}
	if history[0] != RiskLow || history[1] != RiskHigh {
		t.Fatalf("expected history in arrival order, got %v", history)
	}
}

func TestMergerCurrentReturnsCopy(t *testing.T) {
	merger := NewMerger()
	merger.Apply(Context{Triggers: []string{"original"}})

	snapshot := merger.Current()
	snapshot.Triggers[0] = "mutated"

	if merger.Current().Triggers[0] != "original" {
		t.Fatalf("expected snapshot mutation not to reach the merger")
	}
}

func TestMergerDropsCoachingWithoutFeedback(t *testing.T) {
	merger := NewMerger()

	merger.AppendCoaching(Coaching{Score: ScoreGood})
	merger.AppendCoaching(Coaching{Score: ScoreGood, Feedback: "good reflection"})

	if got := len(merger.CoachingLog()); got != 1 {
		t.Fatalf("expected feedback-less entry dropped, got %d entries", got)
	}
}

func TestMergerResetDropsAllState(t *testing.T) {
	merger := NewMerger()
	merger.Apply(Context{RiskLevel: RiskHigh, CurrentMood: "distressed"})
	merger.AppendCoaching(Coaching{Score: ScoreCaution, Feedback: "slow down"})

	merger.Reset()

	if merger.Current() != nil {
		t.Fatalf("expected no current context after reset")
	}
	if len(merger.RiskHistory()) != 0 {
		t.Fatalf("expected risk history cleared after reset")
	}
	if len(merger.CoachingLog()) != 0 {
		t.Fatalf("expected coaching log cleared after reset")
	}
}

func TestMergerNilReceiverIsSafe(t *testing.T) {
	var merger *Merger

	merger.Apply(Context{RiskLevel: RiskLow})
	merger.Reset()

	if merger.Current() != nil || merger.RiskHistory() != nil {
		t.Fatalf("expected nil merger to report empty state")
	}
}
