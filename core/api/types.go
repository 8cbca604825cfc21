package api

import (
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
	"github.com/Gentle-mann/crisis-memory-bridge/core/replay"
)

// StartSessionRequest opens a session for a caller/volunteer pair.
type StartSessionRequest struct {
	CallerID      string `json:"caller_id"`
	VolunteerName string `json:"volunteer_name"`
	Language      string `json:"language"`
}

// StartSessionResult is the session handle plus the returning-caller
// briefing material.
type StartSessionResult struct {
	SessionID    string                   `json:"session_id"`
	IsReturning  bool                     `json:"is_returning"`
	Briefing     string                   `json:"briefing"`
	CallerMemory *CallerMemory            `json:"caller_memory"`
	SessionDiff  *livecontext.SessionDiff `json:"session_diff"`
	Suggestions  []string                 `json:"suggestions"`
}

// CallerMemory is the stored cross-session record for a caller.
type CallerMemory struct {
	Sessions []SessionRecord `json:"sessions"`
}

// SessionRecord is one stored session, including the conversation log used
// for replay.
type SessionRecord struct {
	SessionNumber int                   `json:"session_number"`
	Volunteer     string                `json:"volunteer"`
	Date          string                `json:"date"`
	RiskLevel     livecontext.RiskLevel `json:"risk_level"`
	Summary       string                `json:"summary"`
	Conversation  []replay.Message      `json:"conversation"`
	NewInfo       []string              `json:"new_info"`
	Escalations   []string              `json:"escalations"`
	NewStrategies []string              `json:"new_strategies"`
	Resolved      []string              `json:"resolved"`
}

// EndSessionRequest closes a session and requests memory extraction.
type EndSessionRequest struct {
	SessionID string `json:"session_id"`
}

// ExtractedMemories is the structured result of end-of-session extraction.
type ExtractedMemories struct {
	RiskLevel           livecontext.RiskLevel `json:"risk_level"`
	SessionSummary      string                `json:"session_summary"`
	Triggers            []string              `json:"triggers"`
	EffectiveStrategies []string              `json:"effective_strategies"`
	SafetyPlan          []string              `json:"safety_plan"`
	Warnings            []string              `json:"warnings"`
}

// EndSessionResult reports extraction results for the closed session.
type EndSessionResult struct {
	Status            string            `json:"status"`
	ExtractedMemories ExtractedMemories `json:"extracted_memories"`
}

// Timeline is the ordered per-session history of one caller.
type Timeline struct {
	CallerID string          `json:"caller_id"`
	Sessions []SessionRecord `json:"sessions"`
}

// RiskPoint is one reading of the cross-session risk trend.
type RiskPoint struct {
	Session   int                   `json:"session"`
	Risk      livecontext.RiskLevel `json:"risk"`
	RiskValue int                   `json:"risk_value"`
}

// TriggerCount is the per-session count of newly surfaced information.
type TriggerCount struct {
	Session int `json:"session"`
	Count   int `json:"count"`
}

// SessionDate pairs a session number with its date string.
type SessionDate struct {
	Session int    `json:"session"`
	Date    string `json:"date"`
}

// Analytics carries the server-computed chart series for one caller.
type Analytics struct {
	CallerID      string         `json:"caller_id"`
	RiskTrend     []RiskPoint    `json:"risk_trend"`
	TriggerCounts []TriggerCount `json:"trigger_counts"`
	SessionDates  []SessionDate  `json:"session_dates"`
}

// CallerSummary is one card of the supervisor dashboard grid.
type CallerSummary struct {
	CallerID      string                `json:"caller_id"`
	TotalSessions int                   `json:"total_sessions"`
	RiskLevel     livecontext.RiskLevel `json:"risk_level"`
	LastVolunteer string                `json:"last_volunteer"`
	LastDate      string                `json:"last_date"`
	LastSummary   string                `json:"last_summary"`
	Escalations   bool                  `json:"escalations"`
}

// CallersSummary is the full dashboard payload.
type CallersSummary struct {
	Callers []CallerSummary `json:"callers"`
}
