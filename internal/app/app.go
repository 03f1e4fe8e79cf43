// Package app wires the catalog pipeline to the terminal UI.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atelier-tools/component-palette/internal/catalog"
	"github.com/atelier-tools/component-palette/internal/export"
	"github.com/atelier-tools/component-palette/internal/format/table"
	"github.com/atelier-tools/component-palette/internal/icons"
	"github.com/atelier-tools/component-palette/internal/logging/events"
	"github.com/atelier-tools/component-palette/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDragThreshold mirrors the UI default so the flag layer can expose
// it without importing the UI package.
const DefaultDragThreshold = ui.DefaultDragThreshold

// Config describes user-provided application options.
type Config struct {
	RecordsPath     string
	IconRoot        string
	IconExt         string
	Width           int
	Height          int
	ShowFooter      bool
	DragThreshold   int
	CopyToClipboard bool
	ListOnly        bool
	Verbose         bool
}

// Run bootstraps and executes the Bubble Tea program, or prints the
// catalog listing when ListOnly is set.
func Run(cfg Config) error {
	records, stats := catalog.Load(cfg.RecordsPath)
	events.Catalog.Loaded(cfg.RecordsPath, stats.Kept, stats.Skipped, stats.Malformed)
	cat := catalog.Build(records)
	events.Catalog.Built(len(cat.Categories()), cat.Len())

	resolver := icons.NewResolver(cfg.IconRoot, cfg.IconExt)

	if cfg.ListOnly {
		return writeListing(os.Stdout, cat, resolver)
	}

	var sink export.Sink
	if cfg.CopyToClipboard {
		sink = export.ClipboardSink{}
	} else {
		sink = export.WriterSink{W: os.Stdout}
	}

	model := ui.NewModel(cat, resolver, sink, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.DragThreshold)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// writeListing prints every catalog entry in category order, flagging the
// ones whose icon resolves and would therefore appear on the palette.
func writeListing(w io.Writer, cat *catalog.Catalog, resolver *icons.Resolver) error {
	cols := []table.Column{
		{Title: "CATEGORY"},
		{Title: "NAME"},
		{Title: "ICON"},
		{Title: "OBJECT"},
	}
	rows := make([][]string, 0, cat.Len())
	for _, entry := range cat.All() {
		icon := "-"
		if resolver != nil {
			if _, ok := resolver.Resolve(entry.Category, entry.Name); ok {
				icon = "yes"
			}
		}
		rows = append(rows, []string{entry.Category, entry.Name, icon, entry.Payload})
	}
	for _, line := range table.Render(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
