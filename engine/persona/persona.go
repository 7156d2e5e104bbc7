// Package persona mutates and reads the unified trait bag: named
// experiences nudge specific sliders by fixed deltas, and reaction bias
// maps a situation to a signed leaning derived from trait arithmetic.
package persona

import (
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// Experience names accepted by ApplyExperience.
const (
	Betrayed   = "betrayed"
	Success    = "success"
	Failure    = "failure"
	Helped     = "helped"
	Threatened = "threatened"
)

// Situation names accepted by ReactionBias.
const (
	Opportunity = "opportunity"
	Threat      = "threat"
	BetrayalSit = "betrayal"
	Alliance    = "alliance"
	Negotiation = "negotiation"
)

// ApplyExperience nudges trait sliders by fixed, experience-specific deltas
// scaled by intensity. Every touched slider is clamped to [0,100]. Unknown
// experience names are no-ops.
func ApplyExperience(p *types.Persona, experience string, intensity int) {
	switch experience {
	case Betrayed:
		p.Trust = state.Clamp(p.Trust - intensity)
		p.Caution = state.Clamp(p.Caution + intensity/2)
	case Success:
		p.Pride = state.Clamp(p.Pride + intensity/2)
		p.Ambition = state.Clamp(p.Ambition + intensity/3)
	case Failure:
		p.Pride = state.Clamp(p.Pride - intensity/2)
		p.Caution = state.Clamp(p.Caution + intensity/3)
	case Helped:
		p.Trust = state.Clamp(p.Trust + intensity/2)
		p.Loyalty = state.Clamp(p.Loyalty + intensity/4)
	case Threatened:
		p.Caution = state.Clamp(p.Caution + intensity)
		p.Aggression = state.Clamp(p.Aggression + intensity/2)
		p.Trust = state.Clamp(p.Trust - intensity/4)
	}
}

// ReactionBias maps a named situation to a leaning in [-1,1]: positive
// means drawn toward it, negative means repelled. Each situation is a fixed
// linear combination of trait differences and sums. Unrecognized situations
// return 0.
func ReactionBias(p types.Persona, situation string) float64 {
	switch situation {
	case Opportunity:
		return clampBias(float64(p.Ambition+p.Greed-2*p.Caution) / 200)
	case Threat:
		return clampBias(float64(p.Aggression-p.Caution) / 100)
	case BetrayalSit:
		return clampBias(float64(p.Aggression-p.Trust) / 100)
	case Alliance:
		return clampBias(float64(p.Loyalty+p.Trust-p.Cunning) / 200)
	case Negotiation:
		return clampBias(float64(p.Cunning+p.Greed-2*p.Pride) / 200)
	default:
		return 0
	}
}

func clampBias(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
