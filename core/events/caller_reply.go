package events

const (
	// KindCallerReplySegment identifies streamed caller reply text.
	KindCallerReplySegment Kind = "caller_reply.segment"
	// KindCallerReplyFinal identifies caller reply stream completion.
	KindCallerReplyFinal Kind = "caller_reply.final"
)

// CallerReplySegment carries a streamed caller reply text segment.
type CallerReplySegment struct {
	Base
	Segment string
}

// NewCallerReplySegment creates a caller reply segment event.
func NewCallerReplySegment(segment string) CallerReplySegment {
	return CallerReplySegment{Base: NewBase(KindCallerReplySegment), Segment: segment}
}

// CallerReplyFinal marks caller reply stream completion with the full text.
type CallerReplyFinal struct {
	Base
	Reply string
}

// NewCallerReplyFinal creates a caller reply final event.
func NewCallerReplyFinal(reply string) CallerReplyFinal {
	return CallerReplyFinal{Base: NewBase(KindCallerReplyFinal), Reply: reply}
}
