package agent

import (
	"testing"

	"github.com/ferranti/omerta/types"
)

func baseState() *types.State {
	return &types.State{
		Family:     "Ferranti",
		Wealth:     80_000,
		Reputation: 50,
		Heat:       30,
		Territories: []types.Territory{
			{Name: "Docks", Owner: "Ferranti", Revenue: 10_000},
		},
		Rivals: []types.Rival{
			{Name: "Moretti", Strength: 60, Hostility: 40},
		},
	}
}

func neutral() types.Persona {
	return types.Persona{
		Name: "Sal", Aggression: 50, Greed: 50, Loyalty: 50,
		Ambition: 50, Pride: 50, Caution: 50, Cunning: 50, Trust: 50, Honesty: 50,
	}
}

func TestDecide_DefaultIsCollection(t *testing.T) {
	d := Decide(baseState(), neutral())
	if d.Verdict != Collection {
		t.Errorf("verdict = %q, want %q", d.Verdict, Collection)
	}
	if d.RuleID != "" {
		t.Errorf("default decision should not name a rule, got %q", d.RuleID)
	}
}

func TestDecide_SevereHeatMeansWait(t *testing.T) {
	s := baseState()
	s.Heat = 90

	// Even an aggressive, ambitious boss lays low: the heat rule outranks.
	p := neutral()
	p.Aggression = 90
	p.Ambition = 90
	s.Wealth = 200_000

	d := Decide(s, p)
	if d.Verdict != Wait {
		t.Errorf("verdict = %q, want %q", d.Verdict, Wait)
	}
	if d.RuleID != "agent_lay_low" {
		t.Errorf("rule = %q, want agent_lay_low", d.RuleID)
	}
	if d.Confidence <= 50 {
		t.Errorf("confidence = %d, want above base with severe heat held", d.Confidence)
	}
}

func TestDecide_RichAndAmbitiousExpands(t *testing.T) {
	s := baseState()
	s.Wealth = 200_000
	p := neutral()
	p.Ambition = 80

	d := Decide(s, p)
	if d.Verdict != Expand {
		t.Errorf("verdict = %q, want %q", d.Verdict, Expand)
	}
}

func TestDecide_CautiousBossNegotiatesUnderThreat(t *testing.T) {
	s := baseState()
	s.Rivals[0].Hostility = 90
	p := neutral()
	p.Caution = 80

	d := Decide(s, p)
	if d.Verdict != Negotiate {
		t.Errorf("verdict = %q, want %q", d.Verdict, Negotiate)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	s := baseState()
	p := neutral()
	first := Decide(s, p)
	for i := 0; i < 5; i++ {
		got := Decide(s, p)
		if got.Verdict != first.Verdict || got.RuleID != first.RuleID || got.Confidence != first.Confidence {
			t.Fatal("repeated decisions differed on identical state")
		}
	}
}
