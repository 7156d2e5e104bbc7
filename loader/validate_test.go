package loader

import (
	"strings"
	"testing"

	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// validDefs returns a minimal valid Defs for testing.
func validDefs() *state.Defs {
	return &state.Defs{
		Scenario: types.ScenarioDef{
			Title:  "Test",
			Family: "Ferranti",
		},
		Territories: []types.Territory{
			{Name: "Docks", Owner: "Ferranti", Revenue: 1_000},
		},
		Rivals: []types.Rival{
			{Name: "Moretti", Strength: 50},
		},
		Personas: map[string]types.Persona{},
	}
}

func TestValidate_ValidDefs(t *testing.T) {
	if err := validate(validDefs()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_EmptyTitle(t *testing.T) {
	defs := validDefs()
	defs.Scenario.Title = ""

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	assertContains(t, ve.Errors, "title")
}

func TestValidate_EmptyFamily(t *testing.T) {
	defs := validDefs()
	defs.Scenario.Family = ""

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for empty family")
	}
	assertContains(t, err.(*ValidationError).Errors, "family")
}

func TestValidate_DuplicateTerritory(t *testing.T) {
	defs := validDefs()
	defs.Territories = append(defs.Territories, types.Territory{Name: "Docks", Owner: "Ferranti"})

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for duplicate territory")
	}
	assertContains(t, err.(*ValidationError).Errors, "duplicate territory")
}

func TestValidate_DuplicateRival(t *testing.T) {
	defs := validDefs()
	defs.Rivals = append(defs.Rivals, types.Rival{Name: "Moretti"})

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for duplicate rival")
	}
	assertContains(t, err.(*ValidationError).Errors, "duplicate rival")
}

func TestValidate_UnknownOwner(t *testing.T) {
	defs := validDefs()
	defs.Territories[0].Owner = "Capone"

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for unknown owner")
	}
	assertContains(t, err.(*ValidationError).Errors, "unknown family")
}

func TestValidate_RivalOwnedTerritory(t *testing.T) {
	defs := validDefs()
	defs.Territories[0].Owner = "Moretti"

	if err := validate(defs); err != nil {
		t.Fatalf("rival-owned turf is valid, got: %v", err)
	}
}

func TestValidate_UnclaimedTerritory(t *testing.T) {
	defs := validDefs()
	defs.Territories[0].Owner = ""

	if err := validate(defs); err != nil {
		t.Fatalf("unclaimed turf is valid, got: %v", err)
	}
}

func TestValidate_DuplicateMission(t *testing.T) {
	defs := validDefs()
	defs.Missions = []types.Mission{
		{Name: "heist"}, {Name: "heist"},
	}

	err := validate(defs)
	if err == nil {
		t.Fatal("expected error for duplicate mission")
	}
	assertContains(t, err.(*ValidationError).Errors, "duplicate mission")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	defs := validDefs()
	defs.Scenario.Title = ""
	defs.Scenario.Family = ""
	defs.Territories[0].Owner = "Capone"

	err := validate(defs)
	if err == nil {
		t.Fatal("expected errors")
	}
	ve := err.(*ValidationError)
	if len(ve.Errors) < 3 {
		t.Errorf("expected at least 3 collected errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

// assertContains fails unless one of the collected errors mentions want.
func assertContains(t *testing.T, errors []string, want string) {
	t.Helper()
	for _, e := range errors {
		if strings.Contains(e, want) {
			return
		}
	}
	t.Errorf("no error mentioning %q in %v", want, errors)
}
