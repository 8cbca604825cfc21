package stream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketTransport streams turn frames over a websocket connection, one
// frame per text message, using the same payload schema as the HTTP stream
// without the line marker.
type WebSocketTransport struct {
	url    string
	dialer *websocket.Dialer
}

// NewWebSocketTransport derives the stream endpoint from the backend base
// URL, accepting either an http(s) or ws(s) scheme.
func NewWebSocketTransport(baseURL string) *WebSocketTransport {
	if after, ok := strings.CutPrefix(baseURL, "https://"); ok {
		baseURL = "wss://" + after
	} else if after, ok := strings.CutPrefix(baseURL, "http://"); ok {
		baseURL = "ws://" + after
	}
	return &WebSocketTransport{url: baseURL + "/api/messages/stream", dialer: websocket.DefaultDialer}
}

func (t *WebSocketTransport) OpenTurnStream(ctx context.Context, sessionID, message string) (Source, error) {
	ctx, span := tracer.Start(ctx, "open turn websocket")
	defer span.End()

	conn, _, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		err = fmt.Errorf("error dialing stream websocket: %w", err)
		span.RecordError(err)
		return nil, err
	}

	if err := conn.WriteJSON(turnRequest{SessionID: sessionID, Message: message}); err != nil {
		conn.Close()
		err = fmt.Errorf("error sending turn request: %w", err)
		span.RecordError(err)
		return nil, err
	}

	return &websocketSource{conn: conn}, nil
}

type turnRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type websocketSource struct {
	conn      *websocket.Conn
	closeOnce sync.Once
}

func (s *websocketSource) Frames(ctx context.Context) func(yield func(Frame, error) bool) {
	return func(yield func(Frame, error) bool) {
		ctx, span := tracer.Start(ctx, "decode websocket frames")
		defer span.End()

		closeOnDone := make(chan struct{})
		defer close(closeOnDone)
		go func() {
			select {
			case <-ctx.Done():
				s.Close()
			case <-closeOnDone:
			}
		}()

		for {
			_, payload, err := s.conn.ReadMessage()
			if err != nil {
				if ctx.Err() != nil || isWebsocketStreamEnd(err) {
					return
				}
				span.RecordError(err)
				yield(nil, err)
				return
			}
			if len(payload) == 0 {
				continue
			}

			frame, err := ParseFrame(payload)
			if err != nil {
				span.RecordError(err)
				logger.DebugContext(ctx, "dropped malformed websocket frame", "error", err)
				continue
			}

			if !yield(frame, nil) {
				return
			}
		}
	}
}

func (s *websocketSource) Close() error {
	var err error
	s.closeOnce.Do(func() { err = s.conn.Close() })
	return err
}

func isWebsocketStreamEnd(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) ||
		errors.Is(err, net.ErrClosed)
}
