// Package api is the client for the session backend's REST collaborators:
// session lifecycle, caller timelines, analytics series, and stored session
// retrieval for replay.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Client talks to the session backend. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return operationName + " " + request.URL.Path
			}),
		)},
	}
}

// StartSession opens a session and returns the handle with any
// returning-caller briefing material.
func (c *Client) StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResult, error) {
	var result StartSessionResult
	if err := c.post(ctx, "/api/sessions/start", req, &result); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return &result, nil
}

// EndSession closes a session and returns the extracted memories.
func (c *Client) EndSession(ctx context.Context, sessionID string) (*EndSessionResult, error) {
	var result EndSessionResult
	if err := c.post(ctx, "/api/sessions/end", EndSessionRequest{SessionID: sessionID}, &result); err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	return &result, nil
}

// Timeline fetches the ordered session history for a caller.
func (c *Client) Timeline(ctx context.Context, callerID string) (*Timeline, error) {
	var result Timeline
	path := "/api/callers/" + url.PathEscape(callerID) + "/timeline"
	if err := c.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch timeline: %w", err)
	}
	return &result, nil
}

// Analytics fetches the server-computed chart series for a caller.
func (c *Client) Analytics(ctx context.Context, callerID string) (*Analytics, error) {
	var result Analytics
	path := "/api/callers/" + url.PathEscape(callerID) + "/analytics"
	if err := c.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	return &result, nil
}

// SessionDetail fetches one stored session including its conversation log.
func (c *Client) SessionDetail(ctx context.Context, callerID string, sessionNumber int) (*SessionRecord, error) {
	var result SessionRecord
	path := "/api/callers/" + url.PathEscape(callerID) + "/sessions/" + strconv.Itoa(sessionNumber)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch session detail: %w", err)
	}
	return &result, nil
}

// CallersSummary fetches the per-caller dashboard cards.
func (c *Client) CallersSummary(ctx context.Context) (*CallersSummary, error) {
	var result CallersSummary
	if err := c.get(ctx, "/api/callers/summary", &result); err != nil {
		return nil, fmt.Errorf("failed to fetch caller summaries: %w", err)
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, result)
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("error creating HTTP request: %w", err)
	}

	return c.do(ctx, req, result)
}

func (c *Client) do(ctx context.Context, req *http.Request, result any) error {
	ctx, span := tracer.Start(ctx, "call session backend")
	defer span.End()
	span.SetAttributes(attribute.String("request.url", req.URL.Path))

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
		if detail := decodeErrorDetail(resp.Body); detail != "" {
			err = fmt.Errorf("%s: %s", resp.Status, detail)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		err = fmt.Errorf("error unmarshalling response: %w", err)
		span.RecordError(err)
		return err
	}
	return nil
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
