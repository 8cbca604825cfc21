package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func drainSource(t *testing.T, source Source) []Frame {
	t.Helper()

	var frames []Frame
	for frame, err := range source.Frames(context.Background()) {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		frames = append(frames, frame)
	}
	return frames
}

func TestHTTPTransportStreamsTurnFrames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/messages/stream" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("session_id") != "session-1" || query.Get("message") != "hello there" {
			t.Fatalf("unexpected query %v", query)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, line := range []string{
			`data: {"type": "token", "content": "hi"}`,
			`data: {"type": "stream_end", "caller_response": "hi"}`,
		} {
			w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL)
	source, err := transport.OpenTurnStream(context.Background(), "session-1", "hello there")
	if err != nil {
		t.Fatalf("failed to open turn stream: %v", err)
	}
	defer source.Close()

	frames := drainSource(t, source)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].(TokenFrame).Content != "hi" {
		t.Fatalf("unexpected first frame %#v", frames[0])
	}
}

func TestHTTPTransportSurfacesErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Session not found"}`))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL)
	_, err := transport.OpenTurnStream(context.Background(), "absent", "hello")
	if err == nil {
		t.Fatalf("expected non-OK status surfaced")
	}
	if !strings.Contains(err.Error(), "Session not found") {
		t.Fatalf("expected response detail in error, got %v", err)
	}
}

func TestWebSocketTransportStreamsTurnFrames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/messages/stream" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatalf("failed to upgrade: %v", err)
		}
		defer conn.Close()

		var req turnRequest
		if err := conn.ReadJSON(&req); err != nil {
			t.Fatalf("failed to read turn request: %v", err)
		}
		if req.SessionID != "session-1" || req.Message != "hello" {
			t.Fatalf("unexpected turn request %+v", req)
		}

		for _, payload := range []string{
			`{"type": "token", "content": "he"}`,
			`{"type": "token", "content": "y"}`,
			`{"type": "stream_end", "caller_response": "hey"}`,
		} {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
				t.Fatalf("failed to write frame: %v", err)
			}
		}
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}))
	defer server.Close()

	transport := NewWebSocketTransport(server.URL)
	source, err := transport.OpenTurnStream(context.Background(), "session-1", "hello")
	if err != nil {
		t.Fatalf("failed to open websocket stream: %v", err)
	}
	defer source.Close()

	frames := drainSource(t, source)
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if frames[2].(StreamEndFrame).Reply != "hey" {
		t.Fatalf("unexpected final frame %#v", frames[2])
	}
}
