package stream

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

// Type is the wire discriminator of a decoded frame.
type Type string

const (
	TypeToken     Type = "token"
	TypeStreamEnd Type = "stream_end"
	TypeDone      Type = "done"
)

// Frame is one decoded stream event.
type Frame interface {
	FrameType() Type
}

// TokenFrame carries an incremental caller reply fragment.
type TokenFrame struct {
	Content string
}

func (TokenFrame) FrameType() Type { return TypeToken }

// StreamEndFrame marks reply completion; Reply is the full text fallback for
// the case where no token frame ever arrived.
type StreamEndFrame struct {
	Reply string
}

func (StreamEndFrame) FrameType() Type { return TypeStreamEnd }

// DoneFrame is the delayed analytics bundle for the turn.
type DoneFrame struct {
	LiveContext livecontext.Context
	RiskAlert   *livecontext.RiskAlert
	Coaching    *livecontext.Coaching
	Suggestions []string
}

func (DoneFrame) FrameType() Type { return TypeDone }

// RawFrame is a structurally valid frame of a type this client does not
// recognize. Routing ignores it without error.
type RawFrame struct {
	Type    Type
	Payload json.RawMessage
}

func (f RawFrame) FrameType() Type { return f.Type }

var errPartialAnalytics = errors.New("done frame without live_context")

type frameEnvelope struct {
	Type           Type                   `json:"type"`
	Content        string                 `json:"content"`
	CallerResponse string                 `json:"caller_response"`
	LiveContext    *livecontext.Context   `json:"live_context"`
	RiskAlert      *livecontext.RiskAlert `json:"risk_alert"`
	Coaching       *livecontext.Coaching  `json:"coaching"`
	Suggestions    []string               `json:"suggestions"`
}

// ParseFrame decodes a single frame payload. Analytics bundles must carry a
// full live context; a done frame without one is malformed, never a partial
// patch.
func ParseFrame(payload []byte) (Frame, error) {
	var envelope frameEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("error unmarshalling frame: %w", err)
	}

	switch envelope.Type {
	case TypeToken:
		return TokenFrame{Content: envelope.Content}, nil
	case TypeStreamEnd:
		return StreamEndFrame{Reply: envelope.CallerResponse}, nil
	case TypeDone:
		if envelope.LiveContext == nil {
			return nil, errPartialAnalytics
		}
		liveContext := *envelope.LiveContext
		liveContext.RiskLevel = livecontext.ParseRiskLevel(string(liveContext.RiskLevel))
		if envelope.RiskAlert != nil {
			envelope.RiskAlert.From = livecontext.ParseRiskLevel(string(envelope.RiskAlert.From))
			envelope.RiskAlert.To = livecontext.ParseRiskLevel(string(envelope.RiskAlert.To))
		}
		return DoneFrame{
			LiveContext: liveContext,
			RiskAlert:   envelope.RiskAlert,
			Coaching:    envelope.Coaching,
			Suggestions: envelope.Suggestions,
		}, nil
	default:
		return RawFrame{Type: envelope.Type, Payload: json.RawMessage(payload)}, nil
	}
}
