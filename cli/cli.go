// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Omerta engine. The engine itself never writes output;
// this loop renders the trace text its decisions return.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ferranti/omerta/engine"
	"github.com/ferranti/omerta/engine/mission"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
	lastCmd   string
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the loop: intro, then prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.Defs.Scenario.Intro != "" {
		c.printLine(c.Defs.Scenario.Intro)
		c.printLine("")
	}
	c.printLines(c.statusLines())

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if input == "again" || input == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		if strings.HasPrefix(input, "/") {
			if quit := c.handleMeta(input); quit {
				return
			}
			continue
		}

		if c.dispatch(input) {
			return
		}
	}
}

// dispatch runs one game command. Returns true when the session is over.
func (c *CLI) dispatch(input string) bool {
	verb := strings.ToLower(strings.Fields(input)[0])

	switch verb {
	case "tick", "week":
		report := c.Engine.Tick()
		for _, d := range report.Secondary {
			c.printLines(d.Trace)
		}
		c.printLines(report.Decision.Trace)
		c.printLine(report.Decision.Reason + ".")
		return c.checkStatus(report.Status)

	case "auto":
		_, arg := splitVerb(input)
		p, ok := c.persona(arg)
		if !ok {
			c.printLine(fmt.Sprintf("No persona named %q.", arg))
			return false
		}
		report := c.Engine.AgentTurn(p)
		c.printLine(fmt.Sprintf("%s decides: %s (%d%% sure) — %s.",
			p.Name, report.Decision.Verdict, report.Decision.Confidence, report.Decision.Reason))
		c.printLines(report.Decision.Trace)
		return c.checkStatus(report.Status)

	case "jobs":
		if len(c.Defs.Missions) == 0 {
			c.printLine("No work on offer.")
			return false
		}
		for _, m := range c.Defs.Missions {
			d := mission.Decide(c.Engine.State, m)
			c.printLine(fmt.Sprintf("%s (risk %d, pays $%d): %s — %s (%d%%).",
				m.Name, m.Risk, m.Reward, d.Verdict, d.Reason, d.Confidence))
		}
		return false

	default:
		d := c.Engine.Execute(input)
		c.printDecision(d)
		return c.checkStatus(c.Engine.Status())
	}
}

// checkStatus prints and ends the session on a terminal verdict.
func (c *CLI) checkStatus(status types.Decision) bool {
	switch status.Verdict {
	case engine.Busted, engine.Deposed, engine.Dynasty:
		c.printLine("")
		c.printLine(strings.ToUpper(status.Verdict) + " — " + status.Reason + ".")
		return true
	}
	return false
}

func (c *CLI) printDecision(d types.Decision) {
	if len(d.Trace) > 0 {
		c.printLines(d.Trace)
	} else {
		c.printLine(d.Reason + ".")
	}
	if c.Trace {
		c.printLine(fmt.Sprintf("[trace] rule=%s verdict=%s confidence=%d", d.RuleID, d.Verdict, d.Confidence))
	}
}

// handleMeta processes /commands. Returns true to quit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "/quit", "/q":
		c.printLine("Arrivederci.")
		return true
	case "/status":
		c.printLines(c.statusLines())
	case "/log":
		if len(c.Engine.State.EventLog) == 0 {
			c.printLine("Nothing in the ledger yet.")
			break
		}
		c.printLines(c.Engine.State.EventLog)
	case "/help":
		c.printLines([]string{
			"Actions: collect, bribe, hit <rival>, expand <name>,",
			"         intimidate <rival>, negotiate <rival>, wait",
			"Turns:   tick (close the week), auto <persona>, jobs",
			"Meta:    /status /log /help /quit",
		})
	default:
		c.printLine("Unknown command. Try /help.")
	}
	return false
}

func (c *CLI) statusLines() []string {
	s := c.Engine.State
	return []string{
		fmt.Sprintf("%s — week %d", c.Defs.Scenario.Title, s.Turn),
		fmt.Sprintf("Wealth $%d | Respect %d | Heat %d | Crew %d (loyalty %d)",
			s.Wealth, s.Reputation, s.Heat, s.Crew, s.CrewLoyalty),
		fmt.Sprintf("Territories %d (take $%d/week) | Rivals %d",
			state.TerritoryCount(s), state.TotalRevenue(s), len(s.Rivals)),
	}
}

func (c *CLI) persona(name string) (types.Persona, bool) {
	if name == "" && len(c.Defs.Personas) == 1 {
		for _, p := range c.Defs.Personas {
			return p, true
		}
	}
	p, ok := c.Defs.Personas[name]
	return p, ok
}

func (c *CLI) print(text string)     { fmt.Fprint(c.Out, text) }
func (c *CLI) printLine(text string) { fmt.Fprintln(c.Out, text) }

func (c *CLI) printLines(lines []string) {
	for _, l := range lines {
		c.printLine(l)
	}
}

func splitVerb(input string) (verb, arg string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
