package loader

import (
	"fmt"

	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
	lua "github.com/yuin/gopher-lua"
)

// rawNamed holds a named definition table before compilation.
type rawNamed struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// compile converts collected Lua tables into immutable Defs.
func compile(coll *collector) (*state.Defs, error) {
	if coll.scenario == nil {
		return nil, fmt.Errorf("no Scenario{} block found")
	}

	defs := &state.Defs{
		Scenario: types.ScenarioDef{
			Title:       getString(coll.scenario, "title"),
			Author:      getString(coll.scenario, "author"),
			Version:     getString(coll.scenario, "version"),
			Intro:       getString(coll.scenario, "intro"),
			Family:      getString(coll.scenario, "family"),
			Wealth:      int64(getNumber(coll.scenario, "wealth")),
			Reputation:  getInt(coll.scenario, "reputation", 50),
			Heat:        getInt(coll.scenario, "heat", 0),
			Skill:       getInt(coll.scenario, "skill", 50),
			Crew:        getInt(coll.scenario, "crew", 5),
			CrewLoyalty: getInt(coll.scenario, "crew_loyalty", 70),
		},
		Personas: map[string]types.Persona{},
	}

	for _, raw := range coll.territories {
		defs.Territories = append(defs.Territories, types.Territory{
			Name:     raw.name,
			Owner:    getString(raw.table, "owner"),
			Revenue:  int64(getNumber(raw.table, "revenue")),
			HeatGen:  getInt(raw.table, "heat_gen", 0),
			Kind:     getString(raw.table, "kind"),
			Disputed: getBool(raw.table, "disputed", false),
		})
	}

	for _, raw := range coll.rivals {
		defs.Rivals = append(defs.Rivals, types.Rival{
			Name:      raw.name,
			Strength:  getInt(raw.table, "strength", 50),
			Hostility: getInt(raw.table, "hostility", 0),
			AtWar:     getBool(raw.table, "at_war", false),
		})
	}

	for _, raw := range coll.personas {
		defs.Personas[raw.name] = types.Persona{
			Name:       raw.name,
			Aggression: getInt(raw.table, "aggression", 50),
			Greed:      getInt(raw.table, "greed", 50),
			Loyalty:    getInt(raw.table, "loyalty", 50),
			Ambition:   getInt(raw.table, "ambition", 50),
			Pride:      getInt(raw.table, "pride", 50),
			Caution:    getInt(raw.table, "caution", 50),
			Cunning:    getInt(raw.table, "cunning", 50),
			Trust:      getInt(raw.table, "trust", 50),
			Honesty:    getInt(raw.table, "honesty", 50),
		}
	}

	for _, raw := range coll.missions {
		defs.Missions = append(defs.Missions, types.Mission{
			Name:     raw.name,
			Payer:    getString(raw.table, "payer"),
			Risk:     getInt(raw.table, "risk", 0),
			Reward:   int64(getNumber(raw.table, "reward")),
			SkillReq: getInt(raw.table, "skill", 0),
		})
	}

	return defs, nil
}
