// Package dialogue decides how a persona responds to a question: answer,
// lie, bargain, or refuse. Only the decision is produced here — response
// text belongs to the caller.
package dialogue

import (
	"fmt"

	gamectx "github.com/ferranti/omerta/engine/context"
	"github.com/ferranti/omerta/engine/rules"
	"github.com/ferranti/omerta/types"
)

// Response verdicts.
const (
	Answer  = "answer"
	Lie     = "lie"
	Bargain = "bargain"
	Refuse  = "refuse"
)

var table = rules.NewTable("dialogue",
	Answer, "nothing at stake; answer freely",
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_cop_stonewall",
		Name:     "stonewall the law",
		Verdict:  Refuse,
		Priority: 95,
		Reason:   "never talk business with a badge",
		When: func(c gamectx.Dialogue) bool {
			return c.Question.AskerIsCop && c.Sensitive()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Question.AskerIsCop, Delta: 30},
				rules.Signal{Held: c.Sensitive(), Delta: 15},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_protect_subject",
		Name:     "protect the subject",
		Verdict:  Lie,
		Priority: 90,
		When: func(c gamectx.Dialogue) bool {
			return c.ProtectingSubject() && c.Sensitive()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.ProtectingSubject(), Delta: 25},
				rules.Signal{Held: c.Dishonest(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_enemy_refuse",
		Name:     "give an enemy nothing",
		Verdict:  Refuse,
		Priority: 80,
		Reason:   "an enemy gets nothing",
		When: func(c gamectx.Dialogue) bool {
			return c.Enemy()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Enemy(), Delta: 25},
				rules.Signal{Held: c.Sensitive(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_proud_deflect",
		Name:     "too proud to be pressed",
		Verdict:  Refuse,
		Priority: 70,
		Reason:   "pride will not be pressed",
		When: func(c gamectx.Dialogue) bool {
			return c.Sensitive() && c.Proud() && !c.CloseFriend()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Proud(), Delta: 20},
				rules.Signal{Held: c.Sensitive(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_cunning_bargain",
		Name:     "information has a price",
		Verdict:  Bargain,
		Priority: 60,
		When: func(c gamectx.Dialogue) bool {
			return c.Cunning() && c.Sensitive() && !c.Friend()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Cunning(), Delta: 20},
				rules.Signal{Held: c.Urgent(), Delta: 15},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_dishonest_lie",
		Name:     "lying comes easy",
		Verdict:  Lie,
		Priority: 50,
		When: func(c gamectx.Dialogue) bool {
			return c.Dishonest() && c.Sensitive() && !c.CloseFriend()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Dishonest(), Delta: 20},
				rules.Signal{Held: c.Stranger(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_confide_close_friend",
		Name:     "confide in a close friend",
		Verdict:  Answer,
		Priority: 45,
		When: func(c gamectx.Dialogue) bool {
			return c.CloseFriend()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.CloseFriend(), Delta: 25},
				rules.Signal{Held: c.Trusting(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_urgent_friend",
		Name:     "a friend in need",
		Verdict:  Answer,
		Priority: 40,
		When: func(c gamectx.Dialogue) bool {
			return c.Urgent() && c.Friend()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Friend(), Delta: 15},
				rules.Signal{Held: c.Urgent(), Delta: 10},
			)
		},
	},
	rules.Rule[gamectx.Dialogue]{
		ID:       "dlg_wary_stranger",
		Name:     "wary of strangers",
		Verdict:  Refuse,
		Priority: 30,
		Reason:   "not a conversation for strangers",
		When: func(c gamectx.Dialogue) bool {
			return c.Stranger() && c.Cautious() && c.Sensitive()
		},
		Confidence: func(c gamectx.Dialogue) int {
			return rules.Score(
				rules.Signal{Held: c.Cautious(), Delta: 15},
				rules.Signal{Held: c.Sensitive(), Delta: 10},
			)
		},
	},
)

// Respond evaluates the dialogue table and maps the verdict to a
// ResponseDecision. State is not mutated; relationship adjustment is the
// caller's job via RelationshipModifier.
func Respond(q types.Question, p types.Persona) (types.ResponseDecision, types.Decision) {
	ctx := gamectx.NewDialogue(q, p)
	d := table.Evaluate(nil, ctx)

	resp := types.ResponseDecision{Reason: d.Reason}
	switch d.Verdict {
	case Answer:
		resp.WillAnswer = true
		if ctx.CloseFriend() {
			resp.RelationshipModifier = 5
		} else if ctx.Friend() {
			resp.RelationshipModifier = 2
		}
	case Lie:
		resp.WillAnswer = true
		resp.WillLie = true
		if d.RuleID == "dlg_protect_subject" {
			resp.Reason = fmt.Sprintf("protecting %s", q.Subject)
		}
	case Bargain:
		resp.WillBargain = true
		resp.RelationshipModifier = -2
	case Refuse:
		resp.RelationshipModifier = -5
		if q.AskerIsCop {
			resp.ForcedType = "denial"
			resp.Override = "I don't know anything about that."
		}
	}

	return resp, d
}
