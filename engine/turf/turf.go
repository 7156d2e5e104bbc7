// Package turf adjusts a territory's effective weekly revenue and heat
// through composite valuation predicates. Disputed territories only ever
// lose revenue — the disputed rule outranks every boost.
package turf

import (
	"fmt"

	gamectx "github.com/ferranti/omerta/engine/context"
	"github.com/ferranti/omerta/engine/rules"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// Valuation verdicts.
const (
	Drained  = "drained"
	Boosted  = "boosted"
	Squeezed = "squeezed"
	Hold     = "hold"
	NotFound = "not_found"
)

var table = rules.NewTable("turf",
	Hold, "no valuation change",
	rules.Rule[gamectx.Turf]{
		ID:       "turf_disputed_drain",
		Name:     "disputed turf bleeds",
		Verdict:  Drained,
		Priority: 80,
		When: func(c gamectx.Turf) bool {
			return c.Disputed()
		},
		Apply: func(s *types.State, c gamectx.Turf) []string {
			t := state.FindTerritory(s, c.Territory.Name)
			cut := t.Revenue / 10
			t.Revenue -= cut
			return []string{fmt.Sprintf("%s is contested: take down $%d to $%d.", t.Name, cut, t.Revenue)}
		},
		Confidence: func(c gamectx.Turf) int {
			return rules.Score(
				rules.Signal{Held: c.Disputed(), Delta: 25},
				rules.Signal{Held: c.HighRisk(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Turf]{
		ID:       "turf_prime_racket",
		Name:     "prime racket compounds",
		Verdict:  Boosted,
		Priority: 60,
		When: func(c gamectx.Turf) bool {
			return c.Prime()
		},
		Apply: func(s *types.State, c gamectx.Turf) []string {
			t := state.FindTerritory(s, c.Territory.Name)
			gain := t.Revenue / 10
			t.Revenue += gain
			return []string{fmt.Sprintf("%s runs clean: take up $%d to $%d.", t.Name, gain, t.Revenue)}
		},
		Confidence: func(c gamectx.Turf) int {
			return rules.Score(
				rules.Signal{Held: c.HighValue(), Delta: 20},
				rules.Signal{Held: c.LowRisk(), Delta: 15},
			)
		},
	},
	rules.Rule[gamectx.Turf]{
		ID:       "turf_risky_margin",
		Name:     "risky but profitable",
		Verdict:  Squeezed,
		Priority: 40,
		When: func(c gamectx.Turf) bool {
			return c.RiskyButProfitable()
		},
		Apply: func(s *types.State, c gamectx.Turf) []string {
			t := state.FindTerritory(s, c.Territory.Name)
			gain := t.Revenue / 20
			t.Revenue += gain
			if t.HeatGen < 10 {
				t.HeatGen++
			}
			return []string{fmt.Sprintf("%s squeezes out $%d more, drawing attention (heat gen %d).", t.Name, gain, t.HeatGen)}
		},
		Confidence: func(c gamectx.Turf) int {
			return rules.Score(
				rules.Signal{Held: c.HighValue(), Delta: 15},
				rules.Signal{Held: c.HighRisk(), Delta: 10},
			)
		},
	},
)

// Revalue runs the valuation table for one named territory. An unknown
// name yields a not-found verdict, never a failure.
func Revalue(s *types.State, name string) types.Decision {
	t := state.FindTerritory(s, name)
	if t == nil {
		return types.Decision{
			Verdict:    NotFound,
			Confidence: rules.Base,
			Reason:     fmt.Sprintf("no territory named %q", name),
		}
	}
	return table.Evaluate(s, gamectx.NewTurf(*t))
}

// RevalueAll runs valuation over every territory in declaration order and
// returns the per-territory decisions.
func RevalueAll(s *types.State) []types.Decision {
	decisions := make([]types.Decision, 0, len(s.Territories))
	for i := range s.Territories {
		decisions = append(decisions, table.Evaluate(s, gamectx.NewTurf(s.Territories[i])))
	}
	return decisions
}
