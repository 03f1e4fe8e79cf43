package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReaderKeepsValidRows(t *testing.T) {
	src := "parent,name,object\n" +
		"Inputs,Button,widget:button\n" +
		"Inputs,Slider,widget:slider\n"
	records, stats := LoadReader(strings.NewReader(src))
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %#v", records)
	}
	if stats.Kept != 2 || stats.Skipped != 0 || stats.Malformed != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if records[0].Parent != "Inputs" || records[0].Name != "Button" || records[0].Object != "widget:button" {
		t.Fatalf("unexpected first record %#v", records[0])
	}
}

func TestLoadReaderHeaderOrderIrrelevant(t *testing.T) {
	src := "object,name,parent\n" +
		"widget:button,Button,Inputs\n"
	records, _ := LoadReader(strings.NewReader(src))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %#v", records)
	}
	if records[0].Parent != "Inputs" || records[0].Name != "Button" || records[0].Object != "widget:button" {
		t.Fatalf("header remapping failed: %#v", records[0])
	}
}

func TestLoadReaderSkipsRowsMissingParentOrName(t *testing.T) {
	src := "parent,name,object\n" +
		",Button,widget:button\n" +
		"Inputs,,widget:slider\n" +
		"Inputs,Checkbox,widget:checkbox\n"
	records, stats := LoadReader(strings.NewReader(src))
	if len(records) != 1 || records[0].Name != "Checkbox" {
		t.Fatalf("expected only the checkbox row, got %#v", records)
	}
	if stats.Skipped != 2 {
		t.Fatalf("expected 2 skipped rows, got %+v", stats)
	}
}

func TestLoadReaderMissingObjectDefaultsToEmpty(t *testing.T) {
	src := "parent,name\n" +
		"Inputs,Button\n"
	records, _ := LoadReader(strings.NewReader(src))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %#v", records)
	}
	if records[0].Object != "" {
		t.Fatalf("expected empty payload, got %q", records[0].Object)
	}
}

func TestLoadReaderShortRowDoesNotAbortLoad(t *testing.T) {
	src := "parent,name,object\n" +
		"Inputs\n" +
		"Inputs,Slider,widget:slider\n"
	records, stats := LoadReader(strings.NewReader(src))
	if len(records) != 1 || records[0].Name != "Slider" {
		t.Fatalf("expected the slider row to survive, got %#v", records)
	}
	if stats.Skipped != 1 {
		t.Fatalf("expected the short row counted as skipped, got %+v", stats)
	}
}

func TestLoadReaderMalformedRowDoesNotAbortLoad(t *testing.T) {
	src := "parent,name,object\n" +
		"Inputs,\"Butt\"on,widget:button\n" +
		"Inputs,Slider,widget:slider\n"
	records, stats := LoadReader(strings.NewReader(src))
	if len(records) != 1 || records[0].Name != "Slider" {
		t.Fatalf("expected the slider row to survive, got %#v", records)
	}
	if stats.Malformed != 1 {
		t.Fatalf("expected 1 malformed row, got %+v", stats)
	}
}

func TestLoadReaderTrimsFieldWhitespace(t *testing.T) {
	src := "parent,name,object\n" +
		" Inputs , Button , widget:button \n"
	records, _ := LoadReader(strings.NewReader(src))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %#v", records)
	}
	if records[0].Parent != "Inputs" || records[0].Name != "Button" || records[0].Object != "widget:button" {
		t.Fatalf("expected trimmed fields, got %#v", records[0])
	}
}

func TestLoadReaderUnusableHeaderYieldsEmpty(t *testing.T) {
	records, stats := LoadReader(strings.NewReader("foo,bar\na,b\n"))
	if len(records) != 0 || stats.Kept != 0 {
		t.Fatalf("expected no records without parent/name columns, got %#v", records)
	}
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	records, stats := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if records != nil || stats.Kept != 0 {
		t.Fatalf("expected empty result for missing source, got %#v %+v", records, stats)
	}
}

func TestLoadReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "components.csv")
	src := "parent,name,object\nInputs,Button,widget:button\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	records, stats := Load(path)
	if len(records) != 1 || stats.Kept != 1 {
		t.Fatalf("expected 1 record from disk, got %#v %+v", records, stats)
	}
}
