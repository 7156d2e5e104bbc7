package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Scenario { title = "...", family = "...", wealth = ..., ... }
	L.SetGlobal("Scenario", L.NewFunction(func(L *lua.LState) int {
		coll.scenario = L.CheckTable(1)
		return 0
	}))

	// Territory "name" { owner = ..., revenue = ..., ... } — curried:
	// Territory("name") returns a function that takes a table.
	L.SetGlobal("Territory", named(L, func(name string, tbl *lua.LTable) {
		coll.territories = append(coll.territories, rawNamed{name: name, table: tbl})
	}))

	// Rival "name" { strength = ..., hostility = ..., ... }
	L.SetGlobal("Rival", named(L, func(name string, tbl *lua.LTable) {
		coll.rivals = append(coll.rivals, rawNamed{name: name, table: tbl})
	}))

	// Persona "name" { aggression = ..., trust = ..., ... }
	L.SetGlobal("Persona", named(L, func(name string, tbl *lua.LTable) {
		coll.personas = append(coll.personas, rawNamed{name: name, table: tbl})
	}))

	// Mission "name" { risk = ..., reward = ..., skill = ..., payer = ... }
	L.SetGlobal("Mission", named(L, func(name string, tbl *lua.LTable) {
		coll.missions = append(coll.missions, rawNamed{name: name, table: tbl})
	}))
}

// named builds a curried constructor: F("name") returns a function taking
// the definition table.
func named(L *lua.LState, add func(name string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			add(name, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}
