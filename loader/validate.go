package loader

import (
	"fmt"
	"strings"

	"github.com/ferranti/omerta/engine/state"
)

// ValidationError collects all validation errors so authors see every
// problem in one run.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// validate checks the compiled defs for referential integrity. Numeric
// ranges are NOT rejected here — the engine clamps them — but names must
// be unique and ownership references must resolve.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Scenario.Title == "" {
		ve.errorf("Scenario.title is required")
	}
	if defs.Scenario.Family == "" {
		ve.errorf("Scenario.family is required")
	}

	owners := map[string]bool{defs.Scenario.Family: true, "": true}
	rivalNames := map[string]bool{}
	for _, r := range defs.Rivals {
		if rivalNames[r.Name] {
			ve.errorf("duplicate rival %q", r.Name)
		}
		rivalNames[r.Name] = true
		owners[r.Name] = true
	}

	turfNames := map[string]bool{}
	for _, t := range defs.Territories {
		if turfNames[t.Name] {
			ve.errorf("duplicate territory %q", t.Name)
		}
		turfNames[t.Name] = true
		if !owners[t.Owner] {
			ve.errorf("territory %q owned by unknown family %q", t.Name, t.Owner)
		}
	}

	missionNames := map[string]bool{}
	for _, m := range defs.Missions {
		if missionNames[m.Name] {
			ve.errorf("duplicate mission %q", m.Name)
		}
		missionNames[m.Name] = true
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
