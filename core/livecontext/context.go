package livecontext

import "github.com/jinzhu/copier"

// Context is the cumulative understanding of the caller at a point in time.
// Analytics always replace it wholesale; a partial patch is not a valid
// state of this type.
type Context struct {
	RiskLevel           RiskLevel `json:"risk_level"`
	CurrentMood         string    `json:"current_mood"`
	Triggers            []string  `json:"triggers"`
	Warnings            []string  `json:"warnings"`
	EffectiveStrategies []string  `json:"effective_strategies"`
	KeyFacts            []string  `json:"key_facts"`
	AddressedItems      []string  `json:"addressed_items"`
}

// Clone returns a deep copy so callback receivers cannot alias the slices
// held by the merger.
func (c Context) Clone() Context {
	var out Context
	copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true})
	return out
}

// IsZero reports whether the snapshot carries no information at all.
func (c Context) IsZero() bool {
	return !c.RiskLevel.Known() &&
		c.CurrentMood == "" &&
		len(c.Triggers) == 0 &&
		len(c.Warnings) == 0 &&
		len(c.EffectiveStrategies) == 0 &&
		len(c.KeyFacts) == 0 &&
		len(c.AddressedItems) == 0
}
