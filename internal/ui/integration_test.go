package ui

import (
	"strings"
	"testing"

	"github.com/atelier-tools/component-palette/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

const integrationCSV = `parent,name,object
Inputs,Button,widgets.Button
Inputs,Slider,widgets.Slider.v1
Inputs,Slider,widgets.Slider.v2
Display,Label,widgets.Label
,Orphan,widgets.Orphan
`

func TestFilterThenDragExportsPayload(t *testing.T) {
	records, stats := catalog.LoadReader(strings.NewReader(integrationCSV))
	if stats.Kept != 4 || stats.Skipped != 1 {
		t.Fatalf("unexpected load stats: %+v", stats)
	}
	cat := catalog.Build(records)

	sink := &captureSink{}
	m := NewModel(cat, nil, sink, 40, 15, false, false, 10)
	harness := NewHarness(m)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("slid")}) {
		t.Fatalf("expected filter input to be handled")
	}
	if len(m.palette.Items) != 1 {
		t.Fatalf("expected a single match for 'slid', got %d", len(m.palette.Items))
	}
	target := m.palette.Items[0]
	if target.Category != "Inputs" || target.Name != "Slider" {
		t.Fatalf("expected Inputs/Slider, got %s/%s", target.Category, target.Name)
	}

	m.drag.Press(target, 2, 3)
	harness.Send(tea.MouseMsg{X: 22, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	harness.Send(tea.MouseMsg{X: 22, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if len(sink.payloads) != 1 {
		t.Fatalf("expected exactly one export, got %v", sink.payloads)
	}
	if sink.payloads[0] != "widgets.Slider.v2" {
		t.Fatalf("expected the last duplicate row to win, got %q", sink.payloads[0])
	}

	view := harness.View()
	if !strings.Contains(view, "Slider") {
		t.Fatalf("expected Slider visible after drag, got:\n%s", view)
	}
	if strings.Contains(view, "Button") {
		t.Fatalf("expected Button filtered out, got:\n%s", view)
	}
}
