// Package report renders observations as plain text for headless use.
package report

import (
	"strings"
	"unicode/utf8"
)

// TextTable is a 2D grid of cells that prints with aligned columns.
type TextTable struct {
	lines    [][]string
	maxima   []int
	minSpace int
}

// NewTextTable creates a table with a minimum spacing between columns.
func NewTextTable(minSpace int) *TextTable {
	if minSpace <= 0 {
		minSpace = 2
	}
	return &TextTable{minSpace: minSpace}
}

// Append adds one row of cells.
func (t *TextTable) Append(line ...string) {
	t.lines = append(t.lines, line)
	for i, entry := range line {
		length := utf8.RuneCountInString(entry)
		if i >= len(t.maxima) {
			t.maxima = append(t.maxima, length)
		} else if length > t.maxima[i] {
			t.maxima[i] = length
		}
	}
}

// Format renders the grid, prefixing every line with a leader string.
func (t *TextTable) Format(leader string) string {
	var b strings.Builder
	for _, line := range t.lines {
		b.WriteString(leader)
		for i, entry := range line {
			b.WriteString(entry)
			if i < len(line)-1 {
				pad := t.maxima[i] - utf8.RuneCountInString(entry) + t.minSpace
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
