package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

func TestStartSessionPostsRequestAndDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/sessions/start" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req StartSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.CallerID != "caller-001" || req.Language != "en" {
			t.Fatalf("unexpected request payload: %+v", req)
		}

		json.NewEncoder(w).Encode(StartSessionResult{
			SessionID:   "session-7",
			IsReturning: true,
			Briefing:    "Second call this week.",
			SessionDiff: &livecontext.SessionDiff{NewInfo: []string{"new job"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.StartSession(context.Background(), StartSessionRequest{
		CallerID:      "caller-001",
		VolunteerName: "Sam",
		Language:      "en",
	})
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	if result.SessionID != "session-7" || !result.IsReturning {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.SessionDiff.Empty() {
		t.Fatalf("expected session diff decoded")
	}
}

func TestClientSurfacesErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Caller not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Timeline(context.Background(), "missing-caller")
	if err == nil {
		t.Fatalf("expected error for non-OK status")
	}
	if !strings.Contains(err.Error(), "Caller not found") {
		t.Fatalf("expected backend detail surfaced, got %v", err)
	}
}

func TestSessionDetailBuildsPathAndDecodesConversation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/callers/caller-001/sessions/2" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"session_number": 2,
			"volunteer": "Ana",
			"risk_level": "moderate",
			"conversation": [
				{"role": "volunteer", "content": "Hi."},
				{"role": "caller", "content": "Hello."}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.SessionDetail(context.Background(), "caller-001", 2)
	if err != nil {
		t.Fatalf("failed to fetch session detail: %v", err)
	}
	if record.Volunteer != "Ana" || len(record.Conversation) != 2 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.RiskLevel != livecontext.RiskModerate {
		t.Fatalf("expected risk level decoded, got %q", record.RiskLevel)
	}
}

func TestCallersSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/callers/summary" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(CallersSummary{Callers: []CallerSummary{
			{CallerID: "caller-001", TotalSessions: 3, RiskLevel: livecontext.RiskLow},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	summary, err := client.CallersSummary(context.Background())
	if err != nil {
		t.Fatalf("failed to fetch summaries: %v", err)
	}
	if len(summary.Callers) != 1 || summary.Callers[0].TotalSessions != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
