package state

import (
	"testing"

	"github.com/ferranti/omerta/types"
)

func testDefs() *Defs {
	return &Defs{
		Scenario: types.ScenarioDef{
			Title:       "Test City",
			Family:      "Ferranti",
			Wealth:      100_000,
			Reputation:  50,
			Heat:        10,
			Skill:       60,
			Crew:        5,
			CrewLoyalty: 70,
		},
		Territories: []types.Territory{
			{Name: "Docks", Owner: "Ferranti", Revenue: 10_000, HeatGen: 2},
			{Name: "Market", Owner: "Ferranti", Revenue: 5_000, HeatGen: 1},
			{Name: "Harbor", Owner: "Moretti", Revenue: 20_000, HeatGen: 5},
		},
		Rivals: []types.Rival{
			{Name: "Moretti", Strength: 60, Hostility: 40},
			{Name: "Valentine", Strength: 30, Hostility: 75},
		},
	}
}

func TestNewState_CopiesDefs(t *testing.T) {
	defs := testDefs()
	s := NewState(defs)

	s.Territories[0].Revenue = 1
	s.Rivals[0].Strength = 1

	if defs.Territories[0].Revenue != 10_000 {
		t.Error("mutating state territories leaked into defs")
	}
	if defs.Rivals[0].Strength != 60 {
		t.Error("mutating state rivals leaked into defs")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-50, 0}, {0, 0}, {50, 50}, {100, 100}, {150, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampedMutations_SurviveExtremeDeltas(t *testing.T) {
	s := NewState(testDefs())

	for i := 0; i < 10; i++ {
		AddHeat(s, 500)
	}
	if s.Heat != 100 {
		t.Errorf("heat = %d after extreme increments, want 100", s.Heat)
	}

	for i := 0; i < 10; i++ {
		AddReputation(s, -500)
	}
	if s.Reputation != 0 {
		t.Errorf("reputation = %d after extreme decrements, want 0", s.Reputation)
	}

	r := FindRival(s, "Moretti")
	for i := 0; i < 10; i++ {
		AddHostility(r, 999)
	}
	if r.Hostility != 100 {
		t.Errorf("hostility = %d, want 100", r.Hostility)
	}
}

func TestWealthHasNoFloor(t *testing.T) {
	s := NewState(testDefs())
	s.Wealth -= 1_000_000
	if s.Wealth != -900_000 {
		t.Errorf("wealth = %d, want -900000 (signed, no floor)", s.Wealth)
	}
}

func TestLookups(t *testing.T) {
	s := NewState(testDefs())

	if tr := FindTerritory(s, "Docks"); tr == nil || tr.Revenue != 10_000 {
		t.Error("FindTerritory failed for known name")
	}
	if tr := FindTerritory(s, "Nowhere"); tr != nil {
		t.Error("FindTerritory returned a territory for unknown name")
	}
	if r := FindRival(s, "Valentine"); r == nil || r.Hostility != 75 {
		t.Error("FindRival failed for known name")
	}
	if r := FindRival(s, "Nobody"); r != nil {
		t.Error("FindRival returned a rival for unknown name")
	}
}

func TestAggregates(t *testing.T) {
	s := NewState(testDefs())

	if got := TotalRevenue(s); got != 15_000 {
		t.Errorf("TotalRevenue = %d, want 15000 (rival turf excluded)", got)
	}
	if got := TotalHeatGen(s); got != 3 {
		t.Errorf("TotalHeatGen = %d, want 3", got)
	}
	if got := TerritoryCount(s); got != 2 {
		t.Errorf("TerritoryCount = %d, want 2", got)
	}
	if got := MaxRivalHostility(s); got != 75 {
		t.Errorf("MaxRivalHostility = %d, want 75", got)
	}
}

func TestAppendEvent(t *testing.T) {
	s := NewState(testDefs())
	s.Turn = 3
	AppendEvent(s, "collected $%d", 500)

	if len(s.EventLog) != 1 {
		t.Fatalf("event log length = %d, want 1", len(s.EventLog))
	}
	if s.EventLog[0] != "[turn 3] collected $500" {
		t.Errorf("event = %q", s.EventLog[0])
	}
}
