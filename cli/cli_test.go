package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ferranti/omerta/engine"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// testDefs returns minimal scenario definitions for CLI testing.
func testDefs() *state.Defs {
	return &state.Defs{
		Scenario: types.ScenarioDef{
			Title:       "Test City",
			Family:      "Ferranti",
			Intro:       "The old Don is gone.",
			Wealth:      100_000,
			Reputation:  50,
			Heat:        50,
			Skill:       60,
			Crew:        5,
			CrewLoyalty: 70,
		},
		Territories: []types.Territory{
			{Name: "Docks", Owner: "Ferranti", Revenue: 10_000, HeatGen: 2},
		},
		Rivals: []types.Rival{
			{Name: "Moretti", Strength: 60, Hostility: 10},
		},
		Personas: map[string]types.Persona{
			"Sal": {Name: "Sal", Aggression: 50, Caution: 50},
		},
		Missions: []types.Mission{
			{Name: "milk run", Risk: 2, Reward: 2_000, SkillReq: 10},
		},
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	defs := testDefs()
	eng := engine.New(defs, 42)
	var out bytes.Buffer
	c := &CLI{
		Engine: eng,
		Defs:   defs,
		In:     strings.NewReader(input),
		Out:    &out,
	}
	return c, &out
}

func TestCLI_IntroAndStatus(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "The old Don is gone.") {
		t.Error("intro not printed")
	}
	if !strings.Contains(output, "Test City") {
		t.Error("title not in status")
	}
	if !strings.Contains(output, "Wealth $100000") {
		t.Errorf("status line missing wealth:\n%s", output)
	}
	if !strings.Contains(output, "Arrivederci.") {
		t.Error("quit farewell not printed")
	}
}

func TestCLI_ActionDispatch(t *testing.T) {
	c, out := newTestCLI(t, "bribe\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Paid $10,000") {
		t.Errorf("bribe trace not printed:\n%s", out.String())
	}
	if c.Engine.State.Heat != 30 {
		t.Errorf("heat = %d, want 30", c.Engine.State.Heat)
	}
}

func TestCLI_AgainRepeatsLastCommand(t *testing.T) {
	c, _ := newTestCLI(t, "wait\nagain\ng\n/quit\n")
	c.Run()

	// Three waits from one typed command and two repeats.
	if c.Engine.State.Heat != 35 {
		t.Errorf("heat = %d, want 35 after three waits", c.Engine.State.Heat)
	}
}

func TestCLI_AgainWithNoHistory(t *testing.T) {
	c, out := newTestCLI(t, "again\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Nothing to repeat.") {
		t.Error("empty-history repeat should say so")
	}
}

func TestCLI_CommentsAndBlanksSkipped(t *testing.T) {
	c, _ := newTestCLI(t, "# a scripted comment\n\nwait\n/quit\n")
	c.Run()

	if c.Engine.State.Heat != 45 {
		t.Errorf("heat = %d, want 45: comments and blanks must not dispatch", c.Engine.State.Heat)
	}
}

func TestCLI_TickCommand(t *testing.T) {
	c, out := newTestCLI(t, "tick\n/quit\n")
	c.Run()

	if c.Engine.State.Turn != 1 {
		t.Errorf("turn = %d, want 1", c.Engine.State.Turn)
	}
	if !strings.Contains(out.String(), "week 1 closes.") {
		t.Errorf("tick epilogue missing:\n%s", out.String())
	}
}

func TestCLI_AutoRunsPersona(t *testing.T) {
	c, out := newTestCLI(t, "auto Sal\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Sal decides:") {
		t.Errorf("agent decision not narrated:\n%s", out.String())
	}
}

func TestCLI_AutoUnknownPersona(t *testing.T) {
	c, out := newTestCLI(t, "auto Nino\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), `No persona named "Nino".`) {
		t.Errorf("unknown persona should be reported:\n%s", out.String())
	}
}

func TestCLI_JobsListsMissionDecisions(t *testing.T) {
	c, out := newTestCLI(t, "jobs\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "milk run") {
		t.Errorf("mission not listed:\n%s", output)
	}
	if !strings.Contains(output, "accept") {
		t.Errorf("mission verdict not shown:\n%s", output)
	}
}

func TestCLI_SessionEndsOnBusted(t *testing.T) {
	c, out := newTestCLI(t, "collect\nwait\n/quit\n")
	c.Engine.State.Heat = 99
	c.Run()

	output := out.String()
	if !strings.Contains(output, "BUSTED") {
		t.Errorf("terminal verdict not announced:\n%s", output)
	}
	// The session ended at the collect; the wait never ran.
	if strings.Contains(output, "A quiet week.") {
		t.Error("commands after the ending should not run")
	}
}

func TestCLI_TraceMode(t *testing.T) {
	c, out := newTestCLI(t, "bribe\n/quit\n")
	c.Trace = true
	c.Run()

	if !strings.Contains(out.String(), "[trace] rule=") {
		t.Errorf("trace line missing:\n%s", out.String())
	}
}

func TestCLI_MetaLog(t *testing.T) {
	c, out := newTestCLI(t, "bribe\n/log\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "bribed the precinct") {
		t.Errorf("event log not printed:\n%s", out.String())
	}
}

func TestCLI_MetaHelpAndUnknown(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/bogus\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "collect, bribe") {
		t.Error("/help should list actions")
	}
	if !strings.Contains(output, "Unknown command.") {
		t.Error("unknown meta command should be reported")
	}
}

func TestCLI_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "wait\n/quit\n")
	c.EchoInput = true
	c.Run()

	if !strings.Contains(out.String(), "> wait") {
		t.Errorf("scripted input should echo after the prompt:\n%s", out.String())
	}
}
