package ui

import (
	"reflect"
	"time"

	"github.com/atelier-tools/component-palette/internal/catalog"
	"github.com/atelier-tools/component-palette/internal/export"
	"github.com/atelier-tools/component-palette/internal/icons"
	"github.com/atelier-tools/component-palette/internal/logging/events"
	"github.com/atelier-tools/component-palette/internal/theme"
	"github.com/atelier-tools/component-palette/internal/ui/command"
	"github.com/atelier-tools/component-palette/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const defaultRootTitle = "component palette"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the component palette.
type Model struct {
	palette  *state.Palette
	catalog  *catalog.Catalog
	resolver *icons.Resolver
	zones    *zone.Manager
	bus      *command.Bus
	sink     export.Sink
	drag     dragTracker

	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
	rowID    map[catalog.Identity]int
}

// NewModel initialises the UI state over the supplied catalog. Only
// entries whose icon resolves make it onto the surface; the rest are
// omitted entirely, matching the palette's draggability policy. A nil
// resolver admits every entry, which the tests rely on.
func NewModel(cat *catalog.Catalog, resolver *icons.Resolver, sink export.Sink, width, height int, showFooter, verbose bool, threshold int) *Model {
	surface := make([]catalog.Entry, 0, cat.Len())
	iconless := 0
	for _, entry := range cat.All() {
		if resolver != nil {
			if _, ok := resolver.Resolve(entry.Category, entry.Name); !ok {
				iconless++
				continue
			}
		}
		surface = append(surface, entry)
	}
	events.Catalog.Surface(len(surface), iconless)

	rowID := make(map[catalog.Identity]int, len(surface))
	for i, entry := range surface {
		rowID[entry.Identity()] = i
	}

	m := &Model{
		palette:    state.NewPalette(surface),
		catalog:    cat,
		resolver:   resolver,
		zones:      zone.New(),
		bus:        command.New(),
		sink:       sink,
		drag:       newDragTracker(threshold),
		showFooter: showFooter,
		verbose:    verbose,
		rowID:      rowID,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleExportResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) handleExportResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Drag.Error(result.Err)
		return nil
	}
	events.Drag.Export(result.Entry.Category, result.Entry.Name, len(result.Entry.Payload))
	if m.verbose {
		m.setInfo("Exported " + result.Entry.Name)
	}
	return nil
}

func (m *Model) syncViewport() {
	m.palette.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
