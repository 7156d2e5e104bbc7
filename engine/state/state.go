// Package state manages the mutable simulation state: construction from
// scenario definitions, clamped mutation helpers, and entity lookups.
package state

import (
	"fmt"

	"github.com/ferranti/omerta/types"
)

// Defs holds the immutable scenario definitions loaded from Lua.
type Defs struct {
	Scenario    types.ScenarioDef
	Territories []types.Territory
	Rivals      []types.Rival
	Personas    map[string]types.Persona
	Missions    []types.Mission // declaration order preserved
}

// NewState creates a fresh simulation state from definitions. Territories
// and rivals are deep-copied so a Defs can seed many independent sessions.
func NewState(defs *Defs) *types.State {
	s := &types.State{
		Family:      defs.Scenario.Family,
		Wealth:      defs.Scenario.Wealth,
		Reputation:  Clamp(defs.Scenario.Reputation),
		Heat:        Clamp(defs.Scenario.Heat),
		Skill:       Clamp(defs.Scenario.Skill),
		Crew:        defs.Scenario.Crew,
		CrewLoyalty: Clamp(defs.Scenario.CrewLoyalty),
		Territories: make([]types.Territory, len(defs.Territories)),
		Rivals:      make([]types.Rival, len(defs.Rivals)),
		EventLog:    []string{},
	}
	copy(s.Territories, defs.Territories)
	copy(s.Rivals, defs.Rivals)
	return s
}

// Clamp forces v into [0,100]. Every reputation/heat/hostility style field
// goes through this after mutation — out-of-range inputs are corrected,
// never rejected.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AddHeat adjusts heat by delta, clamped.
func AddHeat(s *types.State, delta int) {
	s.Heat = Clamp(s.Heat + delta)
}

// AddReputation adjusts reputation by delta, clamped.
func AddReputation(s *types.State, delta int) {
	s.Reputation = Clamp(s.Reputation + delta)
}

// AddHostility adjusts a rival's hostility by delta, clamped.
func AddHostility(r *types.Rival, delta int) {
	r.Hostility = Clamp(r.Hostility + delta)
}

// FindTerritory returns a pointer into the state's territory slice,
// or nil if no territory has that name.
func FindTerritory(s *types.State, name string) *types.Territory {
	for i := range s.Territories {
		if s.Territories[i].Name == name {
			return &s.Territories[i]
		}
	}
	return nil
}

// FindRival returns a pointer into the state's rival slice,
// or nil if no rival has that name.
func FindRival(s *types.State, name string) *types.Rival {
	for i := range s.Rivals {
		if s.Rivals[i].Name == name {
			return &s.Rivals[i]
		}
	}
	return nil
}

// TotalRevenue sums the weekly revenue of territories the player family
// controls. Disputed territories still count — their revenue has already
// been reduced by valuation.
func TotalRevenue(s *types.State) int64 {
	var total int64
	for _, t := range s.Territories {
		if t.Owner == s.Family {
			total += t.Revenue
		}
	}
	return total
}

// TotalHeatGen sums heat generation across player-controlled territories.
func TotalHeatGen(s *types.State) int {
	total := 0
	for _, t := range s.Territories {
		if t.Owner == s.Family {
			total += t.HeatGen
		}
	}
	return total
}

// TerritoryCount returns how many territories the player family controls.
func TerritoryCount(s *types.State) int {
	n := 0
	for _, t := range s.Territories {
		if t.Owner == s.Family {
			n++
		}
	}
	return n
}

// MaxRivalHostility returns the highest hostility among rivals, 0 when
// there are none.
func MaxRivalHostility(s *types.State) int {
	max := 0
	for _, r := range s.Rivals {
		if r.Hostility > max {
			max = r.Hostility
		}
	}
	return max
}

// AppendEvent records a line in the append-only event log, prefixed with
// the current turn.
func AppendEvent(s *types.State, format string, args ...any) {
	s.EventLog = append(s.EventLog, fmt.Sprintf("[turn %d] ", s.Turn)+fmt.Sprintf(format, args...))
}
