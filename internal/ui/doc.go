// Package ui contains the Bubble Tea program that renders the component
// palette. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, filtering, drag
// handling, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function (key presses by the
//     navigation helpers, mouse events by the drag tracker, export results
//     by the status handler).
//   - Filter/input helpers (internal/ui/input.go) keep all text entry
//     concerns isolated from the Bubble Tea event loop.
//
// State ownership:
//   - Palette state lives in internal/ui/state.Palette, which tracks the
//     entry surface, filtering, cursor, and viewport calculations.
//   - Export execution is handled through the internal/ui/command package,
//     letting sink writes run asynchronously via the command bus.
//
// Drag handling:
//   - Rendered entry rows are wrapped in bubblezone markers so mouse
//     coordinates map back to catalog entries. A press arms the drag
//     tracker; once pointer displacement crosses the threshold the tracker
//     fires exactly once and the entry's payload is handed to the export
//     sink. A release below the threshold stays a click and exports
//     nothing.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (navigation, filtering, drag detection) without
// needing to reason about the entire TUI at once.
package ui
