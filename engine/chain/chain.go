// Package chain applies cascading secondary effects keyed by a typed
// trigger. Dispatch is a single pass — secondary effects never emit further
// triggers, so there is no recursion to bound. Unknown triggers and unknown
// focal names are silent no-ops; nothing here can fail.
package chain

import (
	"fmt"

	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// Trigger is the closed union of chain-reaction causes. Each variant
// carries only the fields its cascade needs.
type Trigger interface {
	trigger()
}

// PoliceRaid hits a named territory; severity runs 1-10.
type PoliceRaid struct {
	Territory string
	Severity  int
}

// Hit is a completed contract on a rival.
type Hit struct {
	Rival string
}

// Betrayal is a member turning; closeness is how near the traitor stood
// to the boss, 0-100.
type Betrayal struct {
	Traitor   string
	Closeness int
}

// TerritoryLost marks a territory slipping out of family control.
type TerritoryLost struct {
	Territory string
}

func (PoliceRaid) trigger()    {}
func (Hit) trigger()           {}
func (Betrayal) trigger()      {}
func (TerritoryLost) trigger() {}

// Cascade tuning.
const (
	raidBaseHeat     = 8
	raidHeatPerLevel = 2
	severeRaidLevel  = 5
	hitHeat          = 25
	hitHostility     = 30
	tensionThreshold = 80
	betrayalRespect  = 15
	closeTraitor     = 60
)

// highTension reports whether any rival's hostility has passed the
// boiling point.
func highTension(s *types.State) bool {
	return state.MaxRivalHostility(s) > tensionThreshold
}

// Dispatch applies the trigger's cascade to state and returns trace text.
// Each secondary effect is conditionally gated; effects that find no focal
// entity simply skip.
func Dispatch(s *types.State, t Trigger) []string {
	switch ev := t.(type) {
	case PoliceRaid:
		return policeRaid(s, ev)
	case Hit:
		return hit(s, ev)
	case Betrayal:
		return betrayal(s, ev)
	case TerritoryLost:
		return territoryLost(s, ev)
	default:
		return nil
	}
}

func policeRaid(s *types.State, ev PoliceRaid) []string {
	var trace []string

	heat := raidBaseHeat + raidHeatPerLevel*ev.Severity
	state.AddHeat(s, heat)
	trace = append(trace, fmt.Sprintf("Police raid: heat +%d (now %d).", heat, s.Heat))

	// Severe raids choke the named racket's take.
	if ev.Severity >= severeRaidLevel {
		if t := state.FindTerritory(s, ev.Territory); t != nil {
			penalty := t.Revenue / 5
			t.Revenue -= penalty
			trace = append(trace, fmt.Sprintf("%s take down $%d after the raid.", t.Name, penalty))
		}
	}

	state.AppendEvent(s, "police raided %s (severity %d)", ev.Territory, ev.Severity)
	return trace
}

func hit(s *types.State, ev Hit) []string {
	var trace []string

	if r := state.FindRival(s, ev.Rival); r != nil {
		state.AddHostility(r, hitHostility)
		trace = append(trace, fmt.Sprintf("%s hostility +%d (now %d).", r.Name, hitHostility, r.Hostility))
	}

	state.AddHeat(s, hitHeat)
	trace = append(trace, fmt.Sprintf("Heat +%d (now %d).", hitHeat, s.Heat))

	// High tension after a hit tips the target into open war.
	if highTension(s) {
		if r := state.FindRival(s, ev.Rival); r != nil && !r.AtWar {
			r.AtWar = true
			trace = append(trace, fmt.Sprintf("Tensions boil over: %s declares war.", r.Name))
		}
	}

	state.AppendEvent(s, "hit carried out on %s", ev.Rival)
	return trace
}

func betrayal(s *types.State, ev Betrayal) []string {
	var trace []string

	state.AddReputation(s, -betrayalRespect)
	trace = append(trace, fmt.Sprintf("Word of %s's betrayal spreads: respect -%d (now %d).",
		ev.Traitor, betrayalRespect, s.Reputation))

	// A close traitor shakes the crew itself.
	if ev.Closeness > closeTraitor {
		s.CrewLoyalty = state.Clamp(s.CrewLoyalty - 20)
		if s.Crew > 0 {
			s.Crew--
		}
		trace = append(trace, fmt.Sprintf("Crew shaken: loyalty %d, headcount %d.", s.CrewLoyalty, s.Crew))
	}

	state.AppendEvent(s, "%s betrayed the family", ev.Traitor)
	return trace
}

func territoryLost(s *types.State, ev TerritoryLost) []string {
	t := state.FindTerritory(s, ev.Territory)
	if t == nil || t.Owner != s.Family {
		return nil
	}

	t.Owner = ""
	t.Disputed = false
	trace := []string{
		fmt.Sprintf("%s is lost. Weekly take now $%d.", t.Name, state.TotalRevenue(s)),
	}

	state.AppendEvent(s, "lost control of %s", ev.Territory)
	return trace
}
