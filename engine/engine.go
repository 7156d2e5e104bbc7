// Package engine wires the decision subsystems into a playable whole: it
// executes player actions through explicit afford/not-found checks, runs
// the per-turn pipeline, and evaluates the game-level win/lose table.
// All evaluation against one Engine is synchronous and exclusive.
package engine

import (
	"fmt"
	"strings"

	"github.com/ferranti/omerta/engine/agent"
	"github.com/ferranti/omerta/engine/chain"
	gamectx "github.com/ferranti/omerta/engine/context"
	"github.com/ferranti/omerta/engine/rival"
	"github.com/ferranti/omerta/engine/rules"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/engine/turf"
	"github.com/ferranti/omerta/types"
)

// Action costs and effects.
const (
	BribeCost         = 10_000
	bribeHeatDrop     = 20
	HitCost           = 25_000
	hitStrengthDrop   = 20
	ExpandCost        = 20_000
	expandHeat        = 5
	expandRevenue     = 8_000
	expandHeatGen     = 4
	NegotiateCost     = 5_000
	negotiateCooling  = 15
	intimidateFear    = 10
	intimidateRespect = 5
	waitHeatDecay     = 5
)

// Session verdicts from the game-level table.
const (
	Busted  = "busted"
	Deposed = "deposed"
	Dynasty = "dynasty"
	Ongoing = "ongoing"
)

// Engine holds the scenario definitions, the mutable state, and the
// injected randomness source.
type Engine struct {
	Defs  *state.Defs
	State *types.State
	RNG   *RNG
}

// New creates an engine with a fresh state and a seeded RNG.
func New(defs *state.Defs, seed int64) *Engine {
	s := state.NewState(defs)
	s.RNGSeed = seed
	return &Engine{
		Defs:  defs,
		State: s,
		RNG:   NewRNG(seed),
	}
}

// Report is the output of one engine step: the primary decision plus any
// secondary decisions produced by the same tick.
type Report struct {
	Decision  types.Decision
	Secondary []types.Decision
	Status    types.Decision
}

// gameTable holds the win/lose rules. Session termination is a
// top-priority rule here, not an error path.
var gameTable = rules.NewTable("game",
	Ongoing, "the family endures",
	rules.Rule[gamectx.Game]{
		ID:       "game_busted",
		Name:     "the feds close in",
		Verdict:  Busted,
		Priority: 100,
		Reason:   "heat at maximum — the family is rolled up",
		When: func(c gamectx.Game) bool {
			return c.HeatMaxed()
		},
		Confidence: func(c gamectx.Game) int {
			return rules.Score(
				rules.Signal{Held: c.HeatMaxed(), Delta: 40},
			)
		},
	},
	rules.Rule[gamectx.Game]{
		ID:       "game_deposed",
		Name:     "respect and money both gone",
		Verdict:  Deposed,
		Priority: 90,
		Reason:   "broke and disrespected — the commission steps in",
		When: func(c gamectx.Game) bool {
			return c.LowReputation() && c.Broke()
		},
		Confidence: func(c gamectx.Game) int {
			return rules.Score(
				rules.Signal{Held: c.LowReputation(), Delta: 20},
				rules.Signal{Held: c.Broke(), Delta: 20},
			)
		},
	},
	rules.Rule[gamectx.Game]{
		ID:       "game_dynasty",
		Name:     "a dynasty secured",
		Verdict:  Dynasty,
		Priority: 80,
		Reason:   "untouchable — the city belongs to the family",
		When: func(c gamectx.Game) bool {
			return c.Dominating() && c.Wealth > 1_000_000
		},
		Confidence: func(c gamectx.Game) int {
			return rules.Score(
				rules.Signal{Held: c.Dominating(), Delta: 25},
				rules.Signal{Held: c.Wealth > 1_000_000, Delta: 15},
			)
		},
	},
)

// Status evaluates the game-level table against the current state.
func (e *Engine) Status() types.Decision {
	return gameTable.Evaluate(e.State, gamectx.NewGame(e.State))
}

// Execute runs one player action. Input is "<verb>" or "<verb> <name>";
// unknown verbs, unknown focal names, and unaffordable costs all come back
// as verdicts with a visible reason — never an error.
func (e *Engine) Execute(input string) types.Decision {
	verb, arg := splitInput(input)

	switch verb {
	case "collect", "collection":
		return e.collect()
	case "bribe":
		return e.bribe()
	case "hit":
		return e.hit(arg)
	case "expand":
		return e.expand(arg)
	case "intimidate":
		return e.intimidate(arg)
	case "negotiate":
		return e.negotiate(arg)
	case "wait":
		return e.wait()
	default:
		return types.Decision{
			Verdict:    "unknown_action",
			Confidence: rules.Base,
			Reason:     fmt.Sprintf("nobody here knows how to %q", verb),
		}
	}
}

// AgentTurn decides the autonomous actor's action from its persona and
// carries it out. Targeted actions go to the most hostile rival.
func (e *Engine) AgentTurn(p types.Persona) Report {
	d := agent.Decide(e.State, p)

	target := ""
	switch d.Verdict {
	case agent.Intimidate, agent.Negotiate:
		if r := mostHostileRival(e.State); r != nil {
			target = r.Name
		}
	case agent.Expand:
		target = fmt.Sprintf("%s annex %d", p.Name, e.State.Turn)
	}

	input := d.Verdict
	if target != "" {
		input = d.Verdict + " " + target
	}
	applied := e.Execute(input)
	d.Trace = append(d.Trace, applied.Trace...)

	return Report{Decision: d, Secondary: []types.Decision{applied}, Status: e.Status()}
}

// Tick advances the simulation one turn: territory valuation, rival
// strategy, difficulty adjustment, and the game-level check. One atomic
// logical step; the caller must not interleave ticks on the same state.
func (e *Engine) Tick() Report {
	var secondary []types.Decision
	secondary = append(secondary, turf.RevalueAll(e.State)...)
	secondary = append(secondary, rival.StrategizeAll(e.State)...)

	var trace []string
	trace = append(trace, e.crises()...)
	trace = append(trace, rival.AdjustDifficulty(e.State)...)

	e.State.Turn++
	e.State.RNGPosition = e.RNG.Position()

	status := e.Status()
	return Report{
		Decision: types.Decision{
			Verdict:    "tick",
			Confidence: rules.Base,
			Reason:     fmt.Sprintf("week %d closes", e.State.Turn),
			Trace:      trace,
		},
		Secondary: secondary,
		Status:    status,
	}
}

// crises rolls the week's random pressures: a police crackdown when heat
// runs high, a betrayal when crew loyalty frays.
func (e *Engine) crises() []string {
	s := e.State
	var trace []string

	if s.Heat > gamectx.HighHeat && e.RNG.Chance(s.Heat-gamectx.HighHeat) {
		if t := hottestTurf(s); t != nil {
			trace = append(trace, chain.Dispatch(s, chain.PoliceRaid{
				Territory: t.Name,
				Severity:  s.Heat / 10,
			})...)
		}
	}

	if s.CrewLoyalty < 30 && e.RNG.Chance(25) {
		trace = append(trace, chain.Dispatch(s, chain.Betrayal{
			Traitor:   "a soldier",
			Closeness: e.RNG.Between(20, 90),
		})...)
	}

	return trace
}

// hottestTurf returns the family territory drawing the most police attention.
func hottestTurf(s *types.State) *types.Territory {
	var best *types.Territory
	for i := range s.Territories {
		t := &s.Territories[i]
		if t.Owner != s.Family {
			continue
		}
		if best == nil || t.HeatGen > best.HeatGen {
			best = t
		}
	}
	return best
}

func (e *Engine) collect() types.Decision {
	s := e.State
	base := state.TotalRevenue(s)
	// Weekly take varies 90-110% through the injected RNG.
	take := base * int64(e.RNG.Between(90, 110)) / 100
	s.Wealth += take
	heat := state.TotalHeatGen(s)
	state.AddHeat(s, heat)
	state.AppendEvent(s, "collected $%d from %d territories", take, state.TerritoryCount(s))

	g := gamectx.NewGame(s)
	return types.Decision{
		Verdict: "collected",
		Confidence: rules.Score(
			rules.Signal{Held: take > 0, Delta: 20},
			rules.Signal{Held: !g.UnderHeat(), Delta: 10},
		),
		Reason: "the weekly take",
		Trace:  []string{fmt.Sprintf("Collected $%d. Heat +%d (now %d).", take, heat, s.Heat)},
	}
}

func (e *Engine) bribe() types.Decision {
	s := e.State
	if s.Wealth < BribeCost {
		return types.Decision{
			Verdict:    "cannot_afford",
			Confidence: rules.Base,
			Reason:     "Not enough money",
		}
	}

	s.Wealth -= BribeCost
	state.AddHeat(s, -bribeHeatDrop)
	state.AppendEvent(s, "bribed the precinct for $%d", BribeCost)

	return types.Decision{
		Verdict: "bribed",
		Confidence: rules.Score(
			rules.Signal{Held: s.Heat < gamectx.HighHeat, Delta: 20},
		),
		Reason: "money talks downtown",
		Trace:  []string{fmt.Sprintf("Paid $10,000 to the precinct captain. Heat now %d.", s.Heat)},
	}
}

func (e *Engine) hit(name string) types.Decision {
	s := e.State
	r := state.FindRival(s, name)
	if r == nil {
		return notFound("rival", name)
	}
	if s.Wealth < HitCost {
		return types.Decision{
			Verdict:    "cannot_afford",
			Confidence: rules.Base,
			Reason:     "Not enough money",
		}
	}

	s.Wealth -= HitCost
	r.Strength = state.Clamp(r.Strength - hitStrengthDrop)
	trace := []string{fmt.Sprintf("The contract on %s is filled: their strength drops to %d.", r.Name, r.Strength)}
	trace = append(trace, chain.Dispatch(s, chain.Hit{Rival: r.Name})...)

	return types.Decision{
		Verdict: "hit_carried_out",
		Confidence: rules.Score(
			rules.Signal{Held: r.Strength < 50, Delta: 15},
			rules.Signal{Held: r.AtWar, Delta: 10},
		),
		Reason: "a message the whole city hears",
		Trace:  trace,
	}
}

func (e *Engine) expand(name string) types.Decision {
	s := e.State
	if name == "" {
		return notFound("territory", name)
	}
	if state.FindTerritory(s, name) != nil {
		return types.Decision{
			Verdict:    "already_claimed",
			Confidence: rules.Base,
			Reason:     fmt.Sprintf("%s is already on the map", name),
		}
	}
	if s.Wealth < ExpandCost {
		return types.Decision{
			Verdict:    "cannot_afford",
			Confidence: rules.Base,
			Reason:     "Not enough money",
		}
	}

	s.Wealth -= ExpandCost
	s.Territories = append(s.Territories, types.Territory{
		Name:    name,
		Owner:   s.Family,
		Revenue: expandRevenue,
		HeatGen: expandHeatGen,
		Kind:    "protection",
	})
	state.AddHeat(s, expandHeat)
	state.AppendEvent(s, "expanded into %s", name)

	g := gamectx.NewGame(s)
	return types.Decision{
		Verdict: "expanded",
		Confidence: rules.Score(
			rules.Signal{Held: g.StrongFinancially(), Delta: 15},
			rules.Signal{Held: !g.UnderHeat(), Delta: 10},
		),
		Reason: "new turf, new take",
		Trace:  []string{fmt.Sprintf("%s now pays tribute: $%d a week.", name, int64(expandRevenue))},
	}
}

func (e *Engine) intimidate(name string) types.Decision {
	s := e.State
	r := state.FindRival(s, name)
	if r == nil {
		return notFound("rival", name)
	}

	state.AddHostility(r, intimidateFear)
	state.AddReputation(s, intimidateRespect)
	state.AppendEvent(s, "leaned on %s", r.Name)

	return types.Decision{
		Verdict: "intimidated",
		Confidence: rules.Score(
			rules.Signal{Held: s.Reputation > gamectx.HighRespect, Delta: 15},
			rules.Signal{Held: r.Strength < 50, Delta: 10},
		),
		Reason: "fear is cheaper than war",
		Trace: []string{fmt.Sprintf("%s takes the point: respect %d, their hostility %d.",
			r.Name, s.Reputation, r.Hostility)},
	}
}

func (e *Engine) negotiate(name string) types.Decision {
	s := e.State
	r := state.FindRival(s, name)
	if r == nil {
		return notFound("rival", name)
	}
	if s.Wealth < NegotiateCost {
		return types.Decision{
			Verdict:    "cannot_afford",
			Confidence: rules.Base,
			Reason:     "Not enough money",
		}
	}

	s.Wealth -= NegotiateCost
	state.AddHostility(r, -negotiateCooling)
	state.AppendEvent(s, "sat down with %s", r.Name)

	return types.Decision{
		Verdict: "negotiated",
		Confidence: rules.Score(
			rules.Signal{Held: !r.AtWar, Delta: 15},
			rules.Signal{Held: r.Hostility < gamectx.HighRespect, Delta: 10},
		),
		Reason: "a sit-down settles nerves",
		Trace:  []string{fmt.Sprintf("A quiet dinner with %s: hostility now %d.", r.Name, r.Hostility)},
	}
}

func (e *Engine) wait() types.Decision {
	s := e.State
	state.AddHeat(s, -waitHeatDecay)
	state.AppendEvent(s, "laid low")

	return types.Decision{
		Verdict:    "waited",
		Confidence: rules.Base,
		Reason:     "patience is a weapon too",
		Trace:      []string{fmt.Sprintf("A quiet week. Heat now %d.", s.Heat)},
	}
}

func notFound(kind, name string) types.Decision {
	return types.Decision{
		Verdict:    "not_found",
		Confidence: rules.Base,
		Reason:     fmt.Sprintf("no %s named %q", kind, name),
	}
}

func mostHostileRival(s *types.State) *types.Rival {
	var best *types.Rival
	for i := range s.Rivals {
		if best == nil || s.Rivals[i].Hostility > best.Hostility {
			best = &s.Rivals[i]
		}
	}
	return best
}

// splitInput separates the verb from the rest of the line; the remainder
// is a single name and may contain spaces.
func splitInput(input string) (verb, arg string) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return "", ""
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
}
