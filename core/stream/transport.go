package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Source is an open per-turn frame stream.
type Source interface {
	Frames(ctx context.Context) func(yield func(Frame, error) bool)
	Close() error
}

// Opener opens the frame stream for one turn.
type Opener interface {
	OpenTurnStream(ctx context.Context, sessionID, message string) (Source, error)
}

// HTTPTransport streams turn frames over a chunked HTTP response.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		baseURL: baseURL,
		client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return operationName + " " + request.URL.Path
			}),
		)},
	}
}

// OpenTurnStream issues the streaming request for one turn. A non-success
// status before streaming begins is surfaced as an error carrying the parsed
// response detail.
func (t *HTTPTransport) OpenTurnStream(ctx context.Context, sessionID, message string) (Source, error) {
	ctx, span := tracer.Start(ctx, "open turn stream")
	defer span.End()

	params := url.Values{}
	params.Set("session_id", sessionID)
	params.Set("message", message)
	streamURL := t.baseURL + "/api/messages/stream?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		err = fmt.Errorf("error creating HTTP request: %w", err)
		span.RecordError(err)
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	span.SetAttributes(attribute.String("request.url", req.URL.Path))
	resp, err := t.client.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
		if detail := decodeErrorDetail(resp.Body); detail != "" {
			err = fmt.Errorf("%s: %s", resp.Status, detail)
		}
		span.RecordError(err)
		return nil, err
	}

	return &httpSource{body: resp.Body, decoder: NewDecoder(resp.Body)}, nil
}

type httpSource struct {
	body    io.ReadCloser
	decoder *Decoder
}

func (s *httpSource) Frames(ctx context.Context) func(yield func(Frame, error) bool) {
	return s.decoder.Frames(ctx)
}

func (s *httpSource) Close() error {
	return s.body.Close()
}

type errorDetail struct {
	Detail string `json:"detail"`
}

func decodeErrorDetail(r io.Reader) string {
	var detail errorDetail
	if err := json.NewDecoder(r).Decode(&detail); err != nil {
		return ""
	}
	return detail.Detail
}
