package ui

import (
	"fmt"
	"strings"

	"github.com/atelier-tools/component-palette/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	zoneID        string
}

// View implements tea.Model. The rendered surface is scanned for zone
// markers so mouse events can be mapped back to entry rows.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	lines = append(lines, m.entryLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  drag entry to export  backspace clear  esc quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText := m.filterPrompt()
	bottomLines := applyWidth([]styledLine{statusLine, {text: promptText}}, m.width)
	lines = append(lines, bottomLines...)
	return m.zones.Scan(m.renderLines(lines))
}

// entryLines renders the visible viewport: category labels interleaved
// with their entry rows, in catalog order.
func (m *Model) entryLines() []styledLine {
	p := m.palette
	m.syncViewport()
	if len(p.Items) == 0 {
		msg := "(no components)"
		if p.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	displayItems := p.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
		start = p.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			p.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(displayItems)+4)
	lastCategory := ""
	for i, entry := range displayItems {
		if entry.Category != lastCategory {
			lines = append(lines, styledLine{text: entry.Category, style: styles.Category})
			lastCategory = entry.Category
		}
		lines = append(lines, m.buildItemLine(entry, start+i))
	}
	return lines
}

// buildItemLine constructs a single styledLine for an entry row. The row
// is padded to the full width so its mouse zone spans the whole line.
func (m *Model) buildItemLine(entry catalog.Entry, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.palette.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	if m.drag.phase == dragStarted && entry.Identity() == m.drag.entry.Identity() {
		lineStyle = styles.DragItem
	}
	fullText := indicator + " " + entry.Name
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
		zoneID:        m.zoneID(entry),
	}
}

func (m *Model) header() string {
	title := defaultRootTitle
	p := m.palette
	if len(p.Full) == 0 {
		return title
	}
	return fmt.Sprintf("%s (%d/%d)", title, len(p.Items), len(p.Full))
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + bottom bar (error/status + filter prompt)
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	// Category label rows share the viewport with entry rows, but only the
	// labels inside the displayed window cost a row. Shrink until the
	// window and its label count agree.
	capacity := remain
	for {
		labels := m.windowCategoryCount(capacity)
		next := remain - labels
		if next < 1 {
			next = 1
		}
		if next >= capacity {
			return capacity
		}
		capacity = next
	}
}

func (m *Model) windowCategoryCount(capacity int) int {
	items := m.palette.Items
	start := m.palette.ViewportOffset
	if start < 0 || start > len(items) {
		start = 0
	}
	end := start + capacity
	if end > len(items) {
		end = len(items)
	}
	count := 0
	last := ""
	for _, entry := range items[start:end] {
		if entry.Category != last {
			count++
			last = entry.Category
		}
	}
	return count
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = line
		result[i].text = truncateText(line.text, width)
	}
	return result
}

func (m *Model) renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		if line.zoneID != "" {
			text = m.zones.Mark(line.zoneID, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
