// Package table renders aligned plain-text columns for the non-interactive
// catalog listing.
package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one output column of a listing.
type Column struct {
	Title string
	Align Alignment
}

// Render returns the header and rows padded according to the widest entry
// in each column. Rows shorter than the column set are padded with empty
// cells.
func Render(cols []Column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for c, col := range cols {
		widths[c] = cellWidth(col.Title)
	}
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, 0, len(rows)+1)
	header := make([]string, len(cols))
	for c, col := range cols {
		header[c] = col.Title
	}
	out = append(out, formatRow(cols, widths, header))
	for _, row := range rows {
		out = append(out, formatRow(cols, widths, row))
	}
	return out
}

func formatRow(cols []Column, widths []int, row []string) string {
	var b strings.Builder
	for c := range cols {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		if c > 0 {
			b.WriteString("  ")
		}
		pad := widths[c] - cellWidth(cell)
		if pad < 0 {
			pad = 0
		}
		if cols[c].Align == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			if c < len(cols)-1 {
				writeSpaces(&b, pad)
			}
		}
	}
	return b.String()
}

func cellWidth(text string) int {
	return len([]rune(text))
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.WriteByte(' ')
	}
}
