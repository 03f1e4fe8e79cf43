package icons

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIcon(t *testing.T, root, category, name string) {
	t.Helper()
	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".png"), []byte{0x89}, 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}
}

func TestResolvePresent(t *testing.T) {
	root := t.TempDir()
	writeIcon(t, root, "Inputs", "Button")
	r := NewResolver(root, "")
	ref, ok := r.Resolve("Inputs", "Button")
	if !ok {
		t.Fatal("expected icon to resolve")
	}
	want := filepath.Join(root, "Inputs", "Button.png")
	if ref.Path != want {
		t.Fatalf("expected path %q, got %q", want, ref.Path)
	}
}

func TestResolveAbsentIsNotAnError(t *testing.T) {
	r := NewResolver(t.TempDir(), "")
	ref, ok := r.Resolve("Inputs", "Missing")
	if ok {
		t.Fatalf("expected absence, got %#v", ref)
	}
	if ref.Path != "" {
		t.Fatalf("expected zero ref for absent icon, got %#v", ref)
	}
}

func TestResolveDirectoryDoesNotCount(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Inputs", "Button.png"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	r := NewResolver(root, "")
	if _, ok := r.Resolve("Inputs", "Button"); ok {
		t.Fatal("a directory at the icon path must not resolve")
	}
}

func TestResolveCachesStatResults(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(root, "")
	if _, ok := r.Resolve("Inputs", "Button"); ok {
		t.Fatal("expected absence before the icon exists")
	}
	// The negative result is cached; creating the file now must not flip
	// the answer until the entry expires.
	writeIcon(t, root, "Inputs", "Button")
	if _, ok := r.Resolve("Inputs", "Button"); ok {
		t.Fatal("expected cached absence to stick within the TTL")
	}
}

func TestIconPathRule(t *testing.T) {
	r := NewResolver("assets/png", ".svg")
	got := r.IconPath("Layout", "Grid")
	want := filepath.Join("assets/png", "Layout", "Grid.svg")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
