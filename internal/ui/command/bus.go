package command

import (
	"github.com/atelier-tools/component-palette/internal/catalog"
	"github.com/atelier-tools/component-palette/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one payload delivery to the drop sink.
type Request struct {
	Entry catalog.Entry
	Sink  export.Sink
}

// Result communicates the outcome of a payload delivery.
type Result struct {
	Entry catalog.Entry
	Err   error
}

// Bus coordinates delivery of drag payloads to the drop sink.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the delivery into a Bubble Tea command so the export runs
// off the update path and its outcome arrives back as a message.
func (b *Bus) Execute(req Request) tea.Cmd {
	return func() tea.Msg {
		if req.Sink == nil {
			return Result{Entry: req.Entry}
		}
		return Result{Entry: req.Entry, Err: req.Sink.Export(req.Entry.Payload)}
	}
}
