// Package agent selects what an autonomous actor does this turn. The table
// only chooses the action; the engine carries it out, so Apply is limited
// to trace text.
package agent

import (
	"fmt"

	gamectx "github.com/ferranti/omerta/engine/context"
	"github.com/ferranti/omerta/engine/rules"
	"github.com/ferranti/omerta/types"
)

// Action verdicts the table can produce.
const (
	Collection = "collection"
	Intimidate = "intimidate"
	Expand     = "expand"
	Wait       = "wait"
	Negotiate  = "negotiate"
)

var table = rules.NewTable("agent",
	Collection, "nothing pressing; the take must flow",
	rules.Rule[gamectx.Agent]{
		ID:       "agent_lay_low",
		Name:     "lay low under severe heat",
		Verdict:  Wait,
		Priority: 90,
		When: func(c gamectx.Agent) bool {
			return c.UnderSevereHeat()
		},
		Apply: func(_ *types.State, c gamectx.Agent) []string {
			return []string{fmt.Sprintf("Heat at %d — everyone off the street.", c.Heat)}
		},
		Confidence: func(c gamectx.Agent) int {
			return rules.Score(
				rules.Signal{Held: c.UnderSevereHeat(), Delta: 30},
				rules.Signal{Held: c.Cautious(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Agent]{
		ID:       "agent_press_advantage",
		Name:     "press the advantage",
		Verdict:  Intimidate,
		Priority: 70,
		When: func(c gamectx.Agent) bool {
			return c.Dominating() && c.Aggressive()
		},
		Confidence: func(c gamectx.Agent) int {
			return rules.Score(
				rules.Signal{Held: c.Dominating(), Delta: 20},
				rules.Signal{Held: c.Aggressive(), Delta: 15},
				rules.Signal{Held: c.HighReputation(), Delta: 5},
			)
		},
	},
	rules.Rule[gamectx.Agent]{
		ID:       "agent_build_empire",
		Name:     "expand into new turf",
		Verdict:  Expand,
		Priority: 60,
		When: func(c gamectx.Agent) bool {
			return c.StrongFinancially() && c.Ambitious() && !c.UnderHeat()
		},
		Confidence: func(c gamectx.Agent) int {
			return rules.Score(
				rules.Signal{Held: c.StrongFinancially(), Delta: 20},
				rules.Signal{Held: c.Ambitious(), Delta: 15},
			)
		},
	},
	rules.Rule[gamectx.Agent]{
		ID:       "agent_sue_for_peace",
		Name:     "cool a hostile rival",
		Verdict:  Negotiate,
		Priority: 50,
		When: func(c gamectx.Agent) bool {
			return c.MaxHostility > 80 && !c.Aggressive()
		},
		Confidence: func(c gamectx.Agent) int {
			return rules.Score(
				rules.Signal{Held: c.MaxHostility > 80, Delta: 20},
				rules.Signal{Held: c.Cautious(), Delta: 15},
				rules.Signal{Held: c.Vulnerable(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Agent]{
		ID:       "agent_shake_down",
		Name:     "shake down the neighborhood",
		Verdict:  Intimidate,
		Priority: 40,
		When: func(c gamectx.Agent) bool {
			return c.Vulnerable() && c.Aggressive()
		},
		Confidence: func(c gamectx.Agent) int {
			return rules.Score(
				rules.Signal{Held: c.Vulnerable(), Delta: 15},
				rules.Signal{Held: c.Aggressive(), Delta: 15},
			)
		},
	},
)

// Decide picks the actor's action for this turn. The default when nothing
// matches is collection.
func Decide(s *types.State, p types.Persona) types.Decision {
	return table.Evaluate(s, gamectx.NewAgent(s, p))
}
