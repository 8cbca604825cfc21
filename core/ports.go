package bridge

import "context"

// TonePort plays operator-facing notification tones. The default
// implementation is silent; a missing capability disables the feature rather
// than failing at use time.
type TonePort interface {
	PlayAlert()
	PlayChime()
}

type noopTone struct{}

func (noopTone) PlayAlert() {}
func (noopTone) PlayChime() {}

// VoicePort captures spoken volunteer input as text. When no port is wired,
// the voice control is reported unavailable and never started.
type VoicePort interface {
	Start(ctx context.Context, onTranscript func(string)) error
	Stop() error
}
