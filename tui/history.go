// Package tui provides a Bubble Tea terminal UI for the Omerta engine.
package tui

// History keeps recent commands for up/down-arrow recall.
type History struct {
	lines []string
	max   int
	pos   int // -1 = not navigating
}

// NewHistory creates a history buffer holding at most max entries.
func NewHistory(max int) *History {
	return &History{lines: make([]string, 0, max), max: max, pos: -1}
}

// Push records a command; consecutive duplicates are dropped.
func (h *History) Push(cmd string) {
	if n := len(h.lines); n > 0 && h.lines[n-1] == cmd {
		return
	}
	h.lines = append(h.lines, cmd)
	if len(h.lines) > h.max {
		h.lines = h.lines[1:]
	}
}

// Prev steps to the previous (older) entry.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.pos == -1 {
		h.pos = len(h.lines) - 1
	} else if h.pos > 0 {
		h.pos--
	}
	return h.lines[h.pos], true
}

// Next steps to the following (newer) entry; past the newest it returns
// ("", false) and resets to fresh input.
func (h *History) Next() (string, bool) {
	if h.pos == -1 {
		return "", false
	}
	h.pos++
	if h.pos >= len(h.lines) {
		h.pos = -1
		return "", false
	}
	return h.lines[h.pos], true
}

// Reset leaves navigation mode.
func (h *History) Reset() { h.pos = -1 }
