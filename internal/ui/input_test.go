package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	handled := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("btn")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if m.palette.Filter != "btn" {
		t.Fatalf("expected filter 'btn', got %q", m.palette.Filter)
	}
	if pos := m.palette.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	m.palette.SetFilter("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.palette.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.palette.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestCtrlUClearsFilter(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	m.palette.SetFilter("slid", 4)
	if len(m.palette.Items) != 1 {
		t.Fatalf("expected one filtered item, got %d", len(m.palette.Items))
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u to be handled")
	}
	if m.palette.Filter != "" {
		t.Fatalf("expected cleared filter, got %q", m.palette.Filter)
	}
	if len(m.palette.Items) != 3 {
		t.Fatalf("expected full surface restored, got %d", len(m.palette.Items))
	}
}

func TestBackspaceRemovesRune(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	m.palette.SetFilter("btn", 3)
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace to be handled")
	}
	if m.palette.Filter != "bt" {
		t.Fatalf("expected 'bt', got %q", m.palette.Filter)
	}
}

func TestCtrlWDeletesWord(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	m.palette.SetFilter("two words", 9)
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}) {
		t.Fatalf("expected ctrl+w to be handled")
	}
	if m.palette.Filter != "two " {
		t.Fatalf("expected 'two ', got %q", m.palette.Filter)
	}
}

func TestHandleTextInputAcceptsPastedSpaces(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("radio group")}) {
		t.Fatalf("expected pasted text with spaces to be handled")
	}
	if m.palette.Filter != "radio group" {
		t.Fatalf("expected filter 'radio group', got %q", m.palette.Filter)
	}
}

func TestAltRunesIgnored(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}) {
		t.Fatalf("expected alt-modified runes to be ignored")
	}
	if m.palette.Filter != "" {
		t.Fatalf("expected filter unchanged, got %q", m.palette.Filter)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	m.palette.SetFilter("", 0)
	prompt := m.filterPrompt()
	if prompt == "" {
		t.Fatalf("expected non-empty prompt")
	}
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}

func TestFilterPromptShowsQuery(t *testing.T) {
	m := NewModel(testCatalog(t), nil, nil, 0, 0, false, false, 10)
	m.palette.SetFilter("slid", 4)
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "slid") {
		t.Fatalf("expected query in prompt, got %q", prompt)
	}
}
