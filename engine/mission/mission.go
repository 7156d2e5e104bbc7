// Package mission decides whether the player organization takes a candidate
// job. Several accept/reject rules can be simultaneously true; declared
// priority alone resolves them — desperate-accept outranks
// underqualified-reject.
package mission

import (
	gamectx "github.com/ferranti/omerta/engine/context"
	"github.com/ferranti/omerta/engine/rules"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// Acceptance verdicts.
const (
	Accept  = "accept"
	Reject  = "reject"
	Decline = "decline" // default: no rule argued either way
)

var table = rules.NewTable("mission",
	Decline, "no compelling reason to take the job",
	rules.Rule[gamectx.MissionView]{
		ID:       "mission_desperate_accept",
		Name:     "desperate for cash",
		Verdict:  Accept,
		Priority: 90,
		When: func(c gamectx.MissionView) bool {
			return c.Desperate() && c.SafeJob()
		},
		Apply: func(s *types.State, c gamectx.MissionView) []string {
			state.AppendEvent(s, "accepted %q out of desperation", c.Mission.Name)
			return nil
		},
		Confidence: func(c gamectx.MissionView) int {
			return rules.Score(
				rules.Signal{Held: c.Desperate(), Delta: 25},
				rules.Signal{Held: c.SafeJob(), Delta: 15},
			)
		},
	},
	rules.Rule[gamectx.MissionView]{
		ID:       "mission_too_hot_reject",
		Name:     "too much heat for a risky job",
		Verdict:  Reject,
		Priority: 80,
		When: func(c gamectx.MissionView) bool {
			return c.TooHot() && c.RiskyJob()
		},
		Confidence: func(c gamectx.MissionView) int {
			return rules.Score(
				rules.Signal{Held: c.TooHot(), Delta: 25},
				rules.Signal{Held: c.RiskyJob(), Delta: 15},
			)
		},
	},
	rules.Rule[gamectx.MissionView]{
		ID:       "mission_underqualified_reject",
		Name:     "not up to the job",
		Verdict:  Reject,
		Priority: 70,
		When: func(c gamectx.MissionView) bool {
			return c.Underqualified()
		},
		// Rejection confidence scales with the skill deficit, not with any
		// acceptance evidence.
		Confidence: func(c gamectx.MissionView) int {
			return rules.Score(
				rules.Signal{Held: c.SkillDeficit() > 0, Delta: c.SkillDeficit() / 2},
				rules.Signal{Held: c.RiskyJob(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.MissionView]{
		ID:       "mission_rich_reward_accept",
		Name:     "reward worth the trouble",
		Verdict:  Accept,
		Priority: 60,
		When: func(c gamectx.MissionView) bool {
			return c.RichReward() && !c.Underqualified()
		},
		Apply: func(s *types.State, c gamectx.MissionView) []string {
			state.AppendEvent(s, "accepted %q for the payout", c.Mission.Name)
			return nil
		},
		Confidence: func(c gamectx.MissionView) int {
			return rules.Score(
				rules.Signal{Held: c.RichReward(), Delta: 20},
				rules.Signal{Held: !c.Underqualified(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.MissionView]{
		ID:       "mission_routine_accept",
		Name:     "routine work",
		Verdict:  Accept,
		Priority: 50,
		When: func(c gamectx.MissionView) bool {
			return c.SafeJob() && !c.Underqualified()
		},
		Apply: func(s *types.State, c gamectx.MissionView) []string {
			state.AppendEvent(s, "accepted %q as routine work", c.Mission.Name)
			return nil
		},
		Confidence: func(c gamectx.MissionView) int {
			return rules.Score(
				rules.Signal{Held: c.SafeJob(), Delta: 15},
				rules.Signal{Held: !c.Underqualified(), Delta: 10},
			)
		},
	},
)

// Decide evaluates the acceptance table for one candidate mission.
func Decide(s *types.State, m types.Mission) types.Decision {
	return table.Evaluate(s, gamectx.NewMission(s, m))
}
