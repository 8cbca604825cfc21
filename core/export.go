package bridge

import (
	"fmt"
	"strings"
	"time"
)

// ExportTranscript renders the session as a plain-text record: header,
// speaker-tagged transcript, and the latest context summary. Output is
// deterministic for a given snapshot and clock reading.
func (b *Bridge) ExportTranscript(now time.Time) (string, error) {
	if b == nil {
		return "", ErrNoActiveSession
	}

	view := b.Snapshot()
	if view.Session == nil {
		return "", ErrNoActiveSession
	}
	session := view.Session

	var sb strings.Builder
	sb.WriteString("CRISIS MEMORY BRIDGE - Session Transcript\n")
	sb.WriteString("==========================================\n\n")
	fmt.Fprintf(&sb, "Caller: %s\n", session.CallerID)
	fmt.Fprintf(&sb, "Volunteer: %s\n", session.VolunteerName)
	fmt.Fprintf(&sb, "Date: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Duration: %s\n\n", formatDuration(now.Sub(session.StartedAt)))

	sb.WriteString("TRANSCRIPT\n")
	sb.WriteString("----------\n")
	for _, message := range session.Transcript {
		switch message.Role {
		case RoleSystem:
			fmt.Fprintf(&sb, "[SYSTEM] %s\n", message.Content)
		case RoleVolunteer:
			fmt.Fprintf(&sb, "[VOLUNTEER] %s\n", message.Content)
		case RoleCaller:
			fmt.Fprintf(&sb, "[CALLER] %s\n", message.Content)
		}
	}

	if view.LiveContext != nil {
		liveContext := view.LiveContext
		sb.WriteString("\nCONTEXT SUMMARY\n")
		sb.WriteString("---------------\n")
		if liveContext.RiskLevel.Known() {
			fmt.Fprintf(&sb, "Risk Level: %s\n", liveContext.RiskLevel)
		}
		if liveContext.CurrentMood != "" {
			fmt.Fprintf(&sb, "Current Mood: %s\n", liveContext.CurrentMood)
		}
		if len(liveContext.Triggers) > 0 {
			fmt.Fprintf(&sb, "Triggers: %s\n", strings.Join(liveContext.Triggers, ", "))
		}
		if len(liveContext.Warnings) > 0 {
			fmt.Fprintf(&sb, "Warnings: %s\n", strings.Join(liveContext.Warnings, ", "))
		}
		if len(liveContext.EffectiveStrategies) > 0 {
			fmt.Fprintf(&sb, "What Works: %s\n", strings.Join(liveContext.EffectiveStrategies, ", "))
		}
		if len(liveContext.KeyFacts) > 0 {
			fmt.Fprintf(&sb, "Key Facts: %s\n", strings.Join(liveContext.KeyFacts, ", "))
		}
	}

	return sb.String(), nil
}

// ExportFilename names the export file after the caller and the date.
func ExportFilename(callerID string, now time.Time) string {
	return fmt.Sprintf("session-%s-%s.txt", callerID, now.Format("2006-01-02"))
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int(d.Seconds())
	return fmt.Sprintf("%dm %ds", totalSeconds/60, totalSeconds%60)
}
