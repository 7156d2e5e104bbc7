// Package rival decides what each competing family does this turn, and
// applies the difficulty nudge that keeps a dominating player challenged.
package rival

import (
	"fmt"

	"github.com/ferranti/omerta/engine/chain"
	gamectx "github.com/ferranti/omerta/engine/context"
	"github.com/ferranti/omerta/engine/rules"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// Strategy verdicts.
const (
	Attack    = "attack"
	SeekPeace = "seek_peace"
	Hold      = "hold"
	NotFound  = "not_found"
)

// Strategy tuning.
const (
	plunderPerStrength = 150 // dollars taken per point of rival strength
	peaceHostilityDrop = 20
	attackHostility    = 10
	nudgeStrength      = 5
	nudgeHostility     = 5
)

var table = rules.NewTable("rival",
	Hold, "watching and waiting",
	rules.Rule[gamectx.RivalView]{
		ID:       "rival_attack_weak",
		Name:     "attack the exposed family",
		Verdict:  Attack,
		Priority: 80,
		When: func(c gamectx.RivalView) bool {
			return c.StrongerThanFamily() && c.FamilyExposed()
		},
		Apply: func(s *types.State, c gamectx.RivalView) []string {
			r := state.FindRival(s, c.Rival.Name)
			plunder := int64(r.Strength) * plunderPerStrength
			s.Wealth -= plunder
			r.AtWar = true
			state.AddHostility(r, attackHostility)
			state.AppendEvent(s, "%s raided the family for $%d", r.Name, plunder)
			trace := []string{fmt.Sprintf("%s moves on your operation: lost $%d.", r.Name, plunder)}
			// An attack overruns turf the family was already disputing.
			if t := disputedFamilyTurf(s); t != nil {
				trace = append(trace, chain.Dispatch(s, chain.TerritoryLost{Territory: t.Name})...)
			}
			return trace
		},
		Confidence: func(c gamectx.RivalView) int {
			return rules.Score(
				rules.Signal{Held: c.StrongerThanFamily(), Delta: 20},
				rules.Signal{Held: c.WeakFinancially(), Delta: 15},
				rules.Signal{Held: c.LowReputation(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.RivalView]{
		ID:       "rival_sue_for_peace",
		Name:     "sue for peace",
		Verdict:  SeekPeace,
		Priority: 60,
		When: func(c gamectx.RivalView) bool {
			return c.MuchWeaker() && c.AtWar()
		},
		Apply: func(s *types.State, c gamectx.RivalView) []string {
			r := state.FindRival(s, c.Rival.Name)
			state.AddHostility(r, -peaceHostilityDrop)
			r.AtWar = false
			state.AppendEvent(s, "%s sued for peace", r.Name)
			return []string{fmt.Sprintf("%s sends an envoy: hostilities cool (now %d).", r.Name, r.Hostility)}
		},
		Confidence: func(c gamectx.RivalView) int {
			return rules.Score(
				rules.Signal{Held: c.MuchWeaker(), Delta: 25},
				rules.Signal{Held: c.AtWar(), Delta: 10},
			)
		},
	},
)

// Strategize runs one rival's strategy table. Unknown rival names yield a
// not-found verdict.
func Strategize(s *types.State, name string) types.Decision {
	r := state.FindRival(s, name)
	if r == nil {
		return types.Decision{
			Verdict:    NotFound,
			Confidence: rules.Base,
			Reason:     fmt.Sprintf("no rival named %q", name),
		}
	}
	return table.Evaluate(s, gamectx.NewRival(s, *r))
}

// StrategizeAll runs every rival's strategy in declaration order.
func StrategizeAll(s *types.State) []types.Decision {
	decisions := make([]types.Decision, 0, len(s.Rivals))
	for i := range s.Rivals {
		decisions = append(decisions, Strategize(s, s.Rivals[i].Name))
	}
	return decisions
}

// disputedFamilyTurf returns the first family territory under dispute.
func disputedFamilyTurf(s *types.State) *types.Territory {
	for i := range s.Territories {
		t := &s.Territories[i]
		if t.Disputed && t.Owner == s.Family {
			return t
		}
	}
	return nil
}

// AdjustDifficulty nudges every rival's strength and hostility upward while
// the player dominates, preserving challenge. This subsystem never reduces
// rival strength. Returns trace text, empty when no nudge applied.
func AdjustDifficulty(s *types.State) []string {
	g := gamectx.NewGame(s)
	if !g.Dominating() {
		return nil
	}

	var trace []string
	for i := range s.Rivals {
		r := &s.Rivals[i]
		r.Strength = state.Clamp(r.Strength + nudgeStrength)
		state.AddHostility(r, nudgeHostility)
		trace = append(trace, fmt.Sprintf("%s grows bolder (strength %d, hostility %d).",
			r.Name, r.Strength, r.Hostility))
	}
	return trace
}
