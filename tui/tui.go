package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferranti/omerta/engine"
	"github.com/ferranti/omerta/engine/mission"
	"github.com/ferranti/omerta/engine/state"
	"github.com/ferranti/omerta/types"
)

// rawLine stores an unstyled output line with its classification, so we
// can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool
	isSystem bool
}

// Model is the Bubble Tea model for the Omerta TUI.
type Model struct {
	engine *engine.Engine
	defs   *state.Defs

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	over     bool
	lastCmd  string
}

// outputMsg carries engine output into the Update loop.
type outputMsg struct {
	input    string
	lines    []string
	isSystem bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs, trace bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		defs:    defs,
		input:   ti,
		history: NewHistory(100),
		trace:   trace,
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, defs *state.Defs, trace bool) error {
	m := New(eng, defs, trace)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init produces the intro text.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		var lines []string
		sc := m.defs.Scenario
		lines = append(lines, sc.Title+" v"+sc.Version+" by "+sc.Author)
		lines = append(lines, "")
		if sc.Intro != "" {
			lines = append(lines, sc.Intro, "")
		}
		lines = append(lines, "Type /help for commands.")
		return outputMsg{lines: lines}
	}
}

// Update handles key presses, window resizes, and engine output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.Reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case outputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.Reset()

	if input == "again" || input == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(outputMsg{input: input, lines: []string{"Nothing to repeat."}, isSystem: true})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(outputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.over {
		m = m.appendOutput(outputMsg{input: input,
			lines: []string{"The story is over. /quit to leave."}, isSystem: true})
		return m, nil
	}

	m = m.appendOutput(outputMsg{input: input, lines: m.dispatch(input)})
	return m, nil
}

// dispatch runs one game command and collects output lines.
func (m *Model) dispatch(input string) []string {
	verb := strings.ToLower(strings.Fields(input)[0])
	var lines []string

	switch verb {
	case "tick", "week":
		report := m.engine.Tick()
		for _, d := range report.Secondary {
			lines = append(lines, d.Trace...)
		}
		lines = append(lines, report.Decision.Trace...)
		lines = append(lines, report.Decision.Reason+".")
		lines = append(lines, m.statusEpilogue(report.Status)...)

	case "jobs":
		if len(m.defs.Missions) == 0 {
			return []string{"No work on offer."}
		}
		for _, job := range m.defs.Missions {
			d := mission.Decide(m.engine.State, job)
			lines = append(lines, fmt.Sprintf("%s (risk %d, pays $%d): %s — %s (%d%%).",
				job.Name, job.Risk, job.Reward, d.Verdict, d.Reason, d.Confidence))
		}

	default:
		d := m.engine.Execute(input)
		if len(d.Trace) > 0 {
			lines = append(lines, d.Trace...)
		} else {
			lines = append(lines, d.Reason+".")
		}
		if m.trace {
			lines = append(lines, fmt.Sprintf("[trace] rule=%s verdict=%s confidence=%d",
				d.RuleID, d.Verdict, d.Confidence))
		}
		lines = append(lines, m.statusEpilogue(m.engine.Status())...)
	}

	return lines
}

// statusEpilogue appends the terminal banner when the session ends.
func (m *Model) statusEpilogue(status types.Decision) []string {
	switch status.Verdict {
	case engine.Busted, engine.Deposed, engine.Dynasty:
		m.over = true
		return []string{"", strings.ToUpper(status.Verdict) + " — " + status.Reason + "."}
	}
	return nil
}

// handleMeta processes /commands. Returns output and whether to quit.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "/quit", "/q":
		return []string{"Arrivederci."}, true
	case "/log":
		if len(m.engine.State.EventLog) == 0 {
			return []string{"Nothing in the ledger yet."}, false
		}
		return m.engine.State.EventLog, false
	case "/help":
		return []string{
			"Actions: collect, bribe, hit <rival>, expand <name>,",
			"         intimidate <rival>, negotiate <rival>, wait",
			"Turns:   tick (close the week), jobs",
			"Meta:    /log /help /quit",
		}, false
	default:
		return []string{"Unknown command. Try /help."}, false
	}
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders viewport, status bar, and input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// wordWrap wraps text at word boundaries to fit within width.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)
		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}
		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}
