package table

import "testing"

func TestRenderPadsColumns(t *testing.T) {
	cols := []Column{{Title: "CATEGORY"}, {Title: "NAME"}, {Title: "OBJECT"}}
	rows := [][]string{
		{"Inputs", "Button", "widgets.Button"},
		{"Display", "Label", "widgets.Label"},
	}
	lines := Render(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(lines))
	}
	if lines[0] != "CATEGORY  NAME    OBJECT" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Inputs    Button  widgets.Button" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestRenderAlignRight(t *testing.T) {
	cols := []Column{{Title: "NAME"}, {Title: "N", Align: AlignRight}}
	rows := [][]string{{"Button", "1"}, {"Slider", "12"}}
	lines := Render(cols, rows)
	if lines[1] != "Button   1" {
		t.Fatalf("unexpected right-aligned row: %q", lines[1])
	}
	if lines[2] != "Slider  12" {
		t.Fatalf("unexpected right-aligned row: %q", lines[2])
	}
}

func TestRenderShortRowPadded(t *testing.T) {
	cols := []Column{{Title: "A"}, {Title: "B"}}
	lines := Render(cols, [][]string{{"only"}})
	if lines[1] != "only  " {
		t.Fatalf("expected trailing empty cell, got %q", lines[1])
	}
}

func TestRenderNoColumns(t *testing.T) {
	if lines := Render(nil, [][]string{{"x"}}); lines != nil {
		t.Fatalf("expected nil for empty column set, got %v", lines)
	}
}
