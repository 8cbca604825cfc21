package livecontext

import "testing"

func TestMoodArcNeedsTwoReadings(t *testing.T) {
	if points := MoodArc(nil, 100, 40, 5); points != nil {
		t.Fatalf("expected nil for empty history, got %v", points)
	}
	if points := MoodArc([]RiskLevel{RiskHigh}, 100, 40, 5); points != nil {
		t.Fatalf("expected nil for a single reading, got %v", points)
	}
}

func TestMoodArcPlacesSeverityVertically(t *testing.T) {
	points := MoodArc([]RiskLevel{RiskLow, RiskHigh}, 100, 40, 5)

	if len(points) != 2 {
		t.Fatalf("expected one point per reading, got %d", len(points))
	}
	if points[0].X != 5 || points[1].X != 95 {
		t.Fatalf("expected points spread across the padded width, got x=%v,%v", points[0].X, points[1].X)
	}
	if points[1].Y >= points[0].Y {
		t.Fatalf("expected high risk above low risk, got y=%v,%v", points[0].Y, points[1].Y)
	}
	if points[1].Y != 5 {
		t.Fatalf("expected maximum severity at the top pad, got %v", points[1].Y)
	}
}

func TestMoodArcUnknownSitsAtBaseline(t *testing.T) {
	points := MoodArc([]RiskLevel{RiskUnknown, RiskLow}, 100, 40, 5)

	if points[0].Y != 35 {
		t.Fatalf("expected unknown at the bottom pad, got %v", points[0].Y)
	}
}
