// Package rules implements the priority-ordered rule table shared by every
// decision subsystem, with deterministic conflict resolution and a
// confidence score.
package rules

import "github.com/ferranti/omerta/types"

// Rule is one (predicate, effect) pair in a table. When is a pure function
// of the context; Apply mutates state and returns trace text. Apply and
// Confidence may be nil for selection-only rules.
type Rule[C any] struct {
	ID       string
	Name     string
	Verdict  string
	Priority int // higher wins
	Reason   string
	When     func(C) bool
	Apply    func(*types.State, C) []string
	// Confidence is computed from the winning path's own corroborating
	// predicates; rejection rules score rejection evidence.
	Confidence func(C) int
}

// Table is an ordered set of rules for one subsystem. Declaration order is
// the tie-break: when two matching rules share a priority, the one declared
// first wins.
type Table[C any] struct {
	name           string
	defaultVerdict string
	defaultReason  string
	rules          []Rule[C]
}

// NewTable builds a table with the subsystem's documented default verdict,
// returned when no rule matches.
func NewTable[C any](name, defaultVerdict, defaultReason string, rules ...Rule[C]) *Table[C] {
	return &Table[C]{
		name:           name,
		defaultVerdict: defaultVerdict,
		defaultReason:  defaultReason,
		rules:          rules,
	}
}

// Name returns the table's subsystem name.
func (t *Table[C]) Name() string { return t.name }

// Select returns the winning rule for the context without applying it.
// The bool reports whether any rule matched.
func (t *Table[C]) Select(ctx C) (Rule[C], bool) {
	winner := -1
	for i, r := range t.rules {
		if !r.When(ctx) {
			continue
		}
		// Strict > keeps the earliest-declared rule on a priority tie.
		if winner == -1 || r.Priority > t.rules[winner].Priority {
			winner = i
		}
	}
	if winner == -1 {
		return Rule[C]{}, false
	}
	return t.rules[winner], true
}

// Evaluate selects the winning rule, applies its effect to state, and
// returns the Decision. No match yields the table's default verdict,
// never a failure.
func (t *Table[C]) Evaluate(s *types.State, ctx C) types.Decision {
	r, ok := t.Select(ctx)
	if !ok {
		return types.Decision{
			Verdict:    t.defaultVerdict,
			Confidence: Base,
			Reason:     t.defaultReason,
		}
	}

	var trace []string
	if r.Apply != nil {
		trace = r.Apply(s, ctx)
	}

	conf := Base
	if r.Confidence != nil {
		conf = clamp(r.Confidence(ctx))
	}

	reason := r.Reason
	if reason == "" {
		reason = r.Name
	}

	return types.Decision{
		Verdict:    r.Verdict,
		RuleID:     r.ID,
		RuleName:   r.Name,
		Confidence: conf,
		Reason:     reason,
		Trace:      trace,
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
