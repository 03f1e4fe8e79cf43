package ui

import (
	"fmt"

	"github.com/atelier-tools/component-palette/internal/catalog"
	"github.com/atelier-tools/component-palette/internal/logging/events"
	"github.com/atelier-tools/component-palette/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDragThreshold is the Manhattan displacement in cells before a
// press is treated as a drag rather than a click.
const DefaultDragThreshold = 10

type dragPhase int

const (
	dragIdle dragPhase = iota
	dragPressed
	dragStarted
)

// dragTracker correlates the discrete pointer events of one gesture. A
// left press on an entry arms the tracker, motion accumulates displacement
// from the origin, and the threshold crossing fires exactly once per
// gesture. A release below the threshold is a plain click, which the
// palette deliberately leaves unbound.
type dragTracker struct {
	phase     dragPhase
	entry     catalog.Entry
	originX   int
	originY   int
	threshold int
}

func newDragTracker(threshold int) dragTracker {
	if threshold < 1 {
		threshold = DefaultDragThreshold
	}
	return dragTracker{threshold: threshold}
}

// Press arms the tracker with the entry under the pointer.
func (d *dragTracker) Press(entry catalog.Entry, x, y int) {
	d.phase = dragPressed
	d.entry = entry
	d.originX = x
	d.originY = y
}

// Motion reports whether this movement starts the drag: true exactly once
// per gesture, the first time Manhattan displacement from the press origin
// reaches the threshold.
func (d *dragTracker) Motion(x, y int) (catalog.Entry, bool) {
	if d.phase != dragPressed {
		return catalog.Entry{}, false
	}
	if abs(x-d.originX)+abs(y-d.originY) < d.threshold {
		return catalog.Entry{}, false
	}
	d.phase = dragStarted
	return d.entry, true
}

// Release ends the gesture and reports whether it stayed a click.
func (d *dragTracker) Release() (catalog.Entry, bool) {
	entry := d.entry
	clicked := d.phase == dragPressed
	d.phase = dragIdle
	d.entry = catalog.Entry{}
	return entry, clicked
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionPress:
		if entry, ok := m.entryAt(ev); ok {
			m.drag.Press(entry, ev.X, ev.Y)
			events.Drag.Press(entry.Category, entry.Name)
		}
	case ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionMotion:
		if entry, started := m.drag.Motion(ev.X, ev.Y); started {
			return m.startDrag(entry)
		}
	case ev.Button == tea.MouseButtonLeft && ev.Action == tea.MouseActionRelease,
		ev.Button == tea.MouseButtonNone && ev.Action == tea.MouseActionRelease:
		if entry, clicked := m.drag.Release(); clicked {
			events.Drag.Click(entry.Category, entry.Name)
		}
	case ev.Button == tea.MouseButtonWheelUp:
		m.palette.MoveCursorPageUp(3)
		m.syncViewport()
	case ev.Button == tea.MouseButtonWheelDown:
		m.palette.MoveCursorPageDown(3)
		m.syncViewport()
	}
	return nil
}

// startDrag emits the drag-started event for the entry. The icon lookup is
// cosmetic drag feedback only; absence never blocks the export.
func (m *Model) startDrag(entry catalog.Entry) tea.Cmd {
	icon := ""
	if m.resolver != nil {
		if ref, ok := m.resolver.Resolve(entry.Category, entry.Name); ok {
			icon = ref.Path
		}
	}
	events.Drag.Start(entry.Category, entry.Name, icon)
	return m.bus.Execute(command.Request{Entry: entry, Sink: m.sink})
}

// entryAt maps a mouse event to the visible entry row under the pointer.
func (m *Model) entryAt(ev tea.MouseMsg) (catalog.Entry, bool) {
	for _, entry := range m.palette.Items {
		z := m.zones.Get(m.zoneID(entry))
		if z != nil && z.InBounds(ev) {
			return entry, true
		}
	}
	return catalog.Entry{}, false
}

func (m *Model) zoneID(entry catalog.Entry) string {
	return fmt.Sprintf("entry-%d", m.rowID[entry.Identity()])
}
