package events

// KindSuggestionsUpdated identifies replacement of the reply suggestion chips.
const KindSuggestionsUpdated Kind = "suggestions.updated"

// SuggestionsUpdated carries the replacement suggestion list; empty clears.
type SuggestionsUpdated struct {
	Base
	Suggestions []string
}

// NewSuggestionsUpdated creates a suggestions updated event.
func NewSuggestionsUpdated(suggestions []string) SuggestionsUpdated {
	return SuggestionsUpdated{Base: NewBase(KindSuggestionsUpdated), Suggestions: suggestions}
}
