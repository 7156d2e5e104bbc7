package mission

import (
	"testing"

	"github.com/ferranti/omerta/types"
)

func TestDecide_DesperateAcceptOutranksUnderqualifiedReject(t *testing.T) {
	// money=300 is desperate, risk 2 is safe, and skill 20 vs requirement 80
	// means the underqualified-reject rule is simultaneously true. Declared
	// priority alone must resolve this in favor of accepting.
	s := &types.State{Wealth: 300, Skill: 20}
	m := types.Mission{Name: "milk run", Risk: 2, Reward: 2_000, SkillReq: 80}

	d := Decide(s, m)
	if d.Verdict != Accept {
		t.Fatalf("verdict = %q, want %q", d.Verdict, Accept)
	}
	if d.RuleID != "mission_desperate_accept" {
		t.Errorf("rule = %q, want mission_desperate_accept", d.RuleID)
	}
}

func TestDecide_UnderqualifiedRejectScoresTheDeficit(t *testing.T) {
	s := &types.State{Wealth: 50_000, Skill: 20}
	m := types.Mission{Name: "vault job", Risk: 5, Reward: 10_000, SkillReq: 80}

	d := Decide(s, m)
	if d.Verdict != Reject {
		t.Fatalf("verdict = %q, want %q", d.Verdict, Reject)
	}
	if d.RuleID != "mission_underqualified_reject" {
		t.Errorf("rule = %q", d.RuleID)
	}
	// Deficit 60 → 50 + 30 = 80. Rejection confidence comes from the skill
	// gap, not from acceptance evidence.
	if d.Confidence != 80 {
		t.Errorf("confidence = %d, want 80", d.Confidence)
	}

	// A smaller deficit is a less confident rejection.
	s.Skill = 70
	d2 := Decide(s, m)
	if d2.Confidence >= d.Confidence {
		t.Errorf("deficit 10 confidence %d should be below deficit 60 confidence %d",
			d2.Confidence, d.Confidence)
	}
}

func TestDecide_TooHotRejectsRiskyJobs(t *testing.T) {
	s := &types.State{Wealth: 50_000, Skill: 90, Heat: 90}
	m := types.Mission{Name: "hijacking", Risk: 8, Reward: 60_000, SkillReq: 40}

	d := Decide(s, m)
	if d.Verdict != Reject || d.RuleID != "mission_too_hot_reject" {
		t.Errorf("got %q via %q, want reject via mission_too_hot_reject", d.Verdict, d.RuleID)
	}
}

func TestDecide_RichRewardAccepts(t *testing.T) {
	s := &types.State{Wealth: 50_000, Skill: 90, Heat: 10}
	m := types.Mission{Name: "heist", Risk: 6, Reward: 100_000, SkillReq: 40}

	d := Decide(s, m)
	if d.Verdict != Accept || d.RuleID != "mission_rich_reward_accept" {
		t.Errorf("got %q via %q", d.Verdict, d.RuleID)
	}
}

func TestDecide_DefaultDecline(t *testing.T) {
	// Qualified but the job is mid-risk with a modest payout: nothing argues
	// for or against, so the documented default applies.
	s := &types.State{Wealth: 50_000, Skill: 90, Heat: 10}
	m := types.Mission{Name: "errand", Risk: 5, Reward: 1_000, SkillReq: 40}

	d := Decide(s, m)
	if d.Verdict != Decline {
		t.Errorf("verdict = %q, want %q", d.Verdict, Decline)
	}
}

func TestDecide_AcceptLogsToLedger(t *testing.T) {
	s := &types.State{Wealth: 300, Skill: 90}
	m := types.Mission{Name: "milk run", Risk: 2, Reward: 2_000, SkillReq: 10}

	Decide(s, m)
	if len(s.EventLog) != 1 {
		t.Fatalf("event log length = %d, want 1", len(s.EventLog))
	}
}
