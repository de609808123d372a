// Copyright (c) 2025 Comptage
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render prints query results as aligned tables in psql's
// "aligned, border 2" style with single-weight Unicode box glyphs.
// The presentation is a fixed preset: centered title, centered headers,
// right-aligned numeric columns, raw numeric formatting, complete outer
// borders, no footer and no pager.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Box glyphs for the outer border, the header separator and the column
// separators, matching psql's unicode single linestyle at border 2.
const (
	topLeft     = "┌"
	topRight    = "┐"
	topJoin     = "┬"
	midLeft     = "├"
	midRight    = "┤"
	midJoin     = "┼"
	bottomLeft  = "└"
	bottomRight = "┘"
	bottomJoin  = "┴"
	horizontal  = "─"
	vertical    = "│"
)

// Table writes a titled table. A nil or empty rows slice still renders
// the title, header and both outer borders, never a fragment. numeric
// marks columns whose values are right-aligned; it may be nil when no
// column is numeric.
func Table(w io.Writer, title string, columns []string, numeric []bool, rows [][]string) {
	widths := columnWidths(columns, rows)

	// Title centered over the full table width: columns, separators,
	// and one cell-padding space on each side of every column.
	total := len(widths) + 1
	for _, cw := range widths {
		total += cw + 2
	}
	if title != "" {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad(total, runewidth.StringWidth(title))/2), title)
	}

	writeRule(w, widths, topLeft, topJoin, topRight)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = center(col, widths[i])
	}
	writeCells(w, header)

	writeRule(w, widths, midLeft, midJoin, midRight)

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i := range columns {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if i < len(numeric) && numeric[i] {
				cells[i] = leftPad(val, widths[i])
			} else {
				cells[i] = rightPad(val, widths[i])
			}
		}
		writeCells(w, cells)
	}

	writeRule(w, widths, bottomLeft, bottomJoin, bottomRight)
}

// columnWidths computes each column's display width as the widest of its
// header and all of its values.
func columnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeRule writes a horizontal border line using the given corner and
// join glyphs.
func writeRule(w io.Writer, widths []int, left, join, right string) {
	var b strings.Builder
	b.WriteString(left)
	for i, cw := range widths {
		if i > 0 {
			b.WriteString(join)
		}
		b.WriteString(strings.Repeat(horizontal, cw+2))
	}
	b.WriteString(right)
	b.WriteString("\n")
	io.WriteString(w, b.String())
}

// writeCells writes one table line from already-aligned cell strings.
func writeCells(w io.Writer, cells []string) {
	var b strings.Builder
	b.WriteString(vertical)
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(" ")
		b.WriteString(vertical)
	}
	b.WriteString("\n")
	io.WriteString(w, b.String())
}

func pad(width, used int) int {
	if p := width - used; p > 0 {
		return p
	}
	return 0
}

func center(s string, width int) string {
	p := pad(width, runewidth.StringWidth(s))
	left := p / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", p-left)
}

func leftPad(s string, width int) string {
	return strings.Repeat(" ", pad(width, runewidth.StringWidth(s))) + s
}

func rightPad(s string, width int) string {
	return s + strings.Repeat(" ", pad(width, runewidth.StringWidth(s)))
}
