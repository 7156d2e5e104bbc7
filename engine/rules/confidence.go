package rules

// Base is the confidence assigned before any corroborating evidence.
const Base = 50

// Signal is one piece of evidence for a verdict: a predicate that either
// held or didn't, and the fixed delta it contributes when it held.
type Signal struct {
	Held  bool
	Delta int
}

// Score sums Base plus the delta of every signal that held, clamped to
// [0,100]. Callers pass only signals that support the verdict actually
// chosen — a rejection is scored from rejection evidence.
func Score(signals ...Signal) int {
	c := Base
	for _, sig := range signals {
		if sig.Held {
			c += sig.Delta
		}
	}
	return clamp(c)
}
