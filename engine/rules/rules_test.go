package rules

import (
	"testing"

	"github.com/ferranti/omerta/types"
)

// testCtx is a minimal context for exercising the generic table.
type testCtx struct {
	hot  bool
	rich bool
}

func TestEvaluate_HigherPriorityWins(t *testing.T) {
	table := NewTable("test", "default", "nothing matched",
		Rule[testCtx]{
			ID: "low", Verdict: "low", Priority: 10,
			When: func(c testCtx) bool { return c.hot },
		},
		Rule[testCtx]{
			ID: "high", Verdict: "high", Priority: 50,
			When: func(c testCtx) bool { return c.hot },
		},
	)

	d := table.Evaluate(&types.State{}, testCtx{hot: true})
	if d.RuleID != "high" {
		t.Errorf("expected high-priority rule to win, got %q", d.RuleID)
	}
}

func TestEvaluate_TieBreakByDeclarationOrder(t *testing.T) {
	table := NewTable("test", "default", "nothing matched",
		Rule[testCtx]{
			ID: "first", Verdict: "first", Priority: 50,
			When: func(c testCtx) bool { return c.hot },
		},
		Rule[testCtx]{
			ID: "second", Verdict: "second", Priority: 50,
			When: func(c testCtx) bool { return c.hot },
		},
	)

	for i := 0; i < 5; i++ {
		d := table.Evaluate(&types.State{}, testCtx{hot: true})
		if d.RuleID != "first" {
			t.Fatalf("iteration %d: expected earliest-declared rule on tie, got %q", i, d.RuleID)
		}
	}
}

func TestEvaluate_NoMatchYieldsDefault(t *testing.T) {
	table := NewTable("test", "hold", "nothing matched",
		Rule[testCtx]{
			ID: "r", Verdict: "v", Priority: 10,
			When: func(c testCtx) bool { return c.hot },
		},
	)

	d := table.Evaluate(&types.State{}, testCtx{})
	if d.Verdict != "hold" {
		t.Errorf("expected default verdict, got %q", d.Verdict)
	}
	if d.RuleID != "" {
		t.Errorf("default decision should carry no rule id, got %q", d.RuleID)
	}
	if d.Confidence != Base {
		t.Errorf("default confidence = %d, want %d", d.Confidence, Base)
	}
}

func TestEvaluate_ApplyMutatesAndTraces(t *testing.T) {
	table := NewTable("test", "default", "nothing matched",
		Rule[testCtx]{
			ID: "payday", Verdict: "paid", Priority: 10,
			When: func(c testCtx) bool { return c.rich },
			Apply: func(s *types.State, c testCtx) []string {
				s.Wealth += 100
				return []string{"paid out"}
			},
		},
	)

	s := &types.State{}
	d := table.Evaluate(s, testCtx{rich: true})
	if s.Wealth != 100 {
		t.Errorf("effect did not mutate state: wealth = %d", s.Wealth)
	}
	if len(d.Trace) != 1 || d.Trace[0] != "paid out" {
		t.Errorf("unexpected trace: %v", d.Trace)
	}
}

func TestEvaluate_ReasonFallsBackToName(t *testing.T) {
	table := NewTable("test", "default", "nothing matched",
		Rule[testCtx]{
			ID: "r", Name: "a good reason", Verdict: "v", Priority: 10,
			When: func(c testCtx) bool { return true },
		},
	)

	d := table.Evaluate(&types.State{}, testCtx{})
	if d.Reason != "a good reason" {
		t.Errorf("reason = %q, want rule name", d.Reason)
	}
}

func TestSelect_DoesNotApply(t *testing.T) {
	applied := false
	table := NewTable("test", "default", "nothing matched",
		Rule[testCtx]{
			ID: "r", Verdict: "v", Priority: 10,
			When:  func(c testCtx) bool { return true },
			Apply: func(s *types.State, c testCtx) []string { applied = true; return nil },
		},
	)

	r, ok := table.Select(testCtx{})
	if !ok || r.ID != "r" {
		t.Fatalf("Select returned %v, %v", r.ID, ok)
	}
	if applied {
		t.Error("Select must not run effects")
	}
}
