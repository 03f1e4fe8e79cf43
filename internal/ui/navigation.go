package ui

import (
	"github.com/atelier-tools/component-palette/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		events.App.Quit()
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "up", "ctrl+p":
		m.moveCursorUp()
	case "down", "ctrl+n":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// Escape clears an active filter first; a second escape quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	p := m.palette
	if p.Filter != "" {
		before := p.FilterCursorPos()
		p.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Cleared()
		m.syncViewport()
		return nil
	}
	events.App.Quit()
	return tea.Quit
}

func (m *Model) moveCursorUp() {
	p := m.palette
	if n := len(p.Items); n > 0 {
		if p.Cursor > 0 {
			p.Cursor--
		} else {
			p.Cursor = n - 1
		}
		events.UI.Cursor(p.Cursor)
		m.syncViewport()
	}
}

func (m *Model) moveCursorDown() {
	p := m.palette
	if n := len(p.Items); n > 0 {
		if p.Cursor < n-1 {
			p.Cursor++
		} else {
			p.Cursor = 0
		}
		events.UI.Cursor(p.Cursor)
		m.syncViewport()
	}
}

func (m *Model) moveCursorPageUp() {
	if moved := m.palette.MoveCursorPageUp(m.maxVisibleItems()); moved {
		events.UI.Cursor(m.palette.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if moved := m.palette.MoveCursorPageDown(m.maxVisibleItems()); moved {
		events.UI.Cursor(m.palette.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if moved := m.palette.MoveCursorHome(); moved {
		events.UI.Cursor(m.palette.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if moved := m.palette.MoveCursorEnd(); moved {
		events.UI.Cursor(m.palette.Cursor)
	}
	m.syncViewport()
}
