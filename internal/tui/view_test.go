package tui

import (
	"strings"
	"testing"

	bridge "github.com/Gentle-mann/crisis-memory-bridge/core"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

func TestContextPanelRendersSessionDiff(t *testing.T) {
	m := Model{view: bridge.View{Session: &bridge.SessionView{
		CallerID:    "caller-001",
		IsReturning: true,
		Diff: &livecontext.SessionDiff{
			NewInfo:       []string{"started therapy"},
			Escalations:   []string{"mentioned means"},
			NewStrategies: []string{"box breathing"},
		},
	}}}

	panel := m.renderContextPanel()
	for _, want := range []string{
		"SINCE LAST SESSION",
		"started therapy",
		"mentioned means",
		"box breathing",
	} {
		if !strings.Contains(panel, want) {
			t.Fatalf("expected context panel to show %q, got:\n%s", want, panel)
		}
	}
}

func TestContextPanelSuppressesEmptyDiff(t *testing.T) {
	m := Model{view: bridge.View{Session: &bridge.SessionView{
		CallerID: "caller-001",
		Diff:     &livecontext.SessionDiff{RiskLevel: livecontext.RiskHigh},
	}}}

	if panel := m.renderContextPanel(); strings.Contains(panel, "SINCE LAST SESSION") {
		t.Fatalf("expected diff panel suppressed when all buckets are empty, got:\n%s", panel)
	}
}
