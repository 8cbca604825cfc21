package bridge

import (
	"strings"
	"testing"
	"time"

	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

func TestExportTranscriptRendersHeaderTranscriptAndContext(t *testing.T) {
	b, _ := newTestBridge(t, &fakeBackend{}, &fakeOpener{})
	startTestSession(t, b)

	b.mu.Lock()
	b.session.StartedAt = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	b.session.appendMessage(RoleVolunteer, "How are you tonight?")
	b.session.appendMessage(RoleCaller, "Not great, honestly.")
	b.session.appendMessage(RoleSystem, "Error: connection reset")
	b.mu.Unlock()
	b.merger.Apply(livecontext.Context{
		RiskLevel:   livecontext.RiskModerate,
		CurrentMood: "anxious",
		Triggers:    []string{"work stress", "insomnia"},
	})

	now := time.Date(2026, 3, 14, 20, 12, 30, 0, time.UTC)
	text, err := b.ExportTranscript(now)
	if err != nil {
		t.Fatalf("failed to export transcript: %v", err)
	}

	for _, want := range []string{
		"CRISIS MEMORY BRIDGE - Session Transcript",
		"Caller: caller-001",
		"Volunteer: Sam",
		"Duration: 12m 30s",
		"[VOLUNTEER] How are you tonight?",
		"[CALLER] Not great, honestly.",
		"[SYSTEM] Error: connection reset",
		"CONTEXT SUMMARY",
		"Risk Level: moderate",
		"Current Mood: anxious",
		"Triggers: work stress, insomnia",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected export to contain %q, got:\n%s", want, text)
		}
	}

	again, err := b.ExportTranscript(now)
	if err != nil {
		t.Fatalf("failed to export transcript twice: %v", err)
	}
	if text != again {
		t.Fatalf("expected deterministic export for identical state and clock")
	}
}

func TestExportTranscriptWithoutSession(t *testing.T) {
	b, _ := newTestBridge(t, &fakeBackend{}, &fakeOpener{})

	if _, err := b.ExportTranscript(time.Now()); err == nil {
		t.Fatalf("expected export rejected without a session")
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	if got := ExportFilename("caller-001", now); got != "session-caller-001-2026-03-14.txt" {
		t.Fatalf("unexpected export filename %q", got)
	}
}
