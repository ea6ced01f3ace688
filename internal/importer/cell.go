package importer

import (
	"regexp"
	"strconv"
	"strings"
)

type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet value. Everything downstream reads it through
// Text(), the trimmed textual view. Cells parsed from reader output keep
// their source text so digit counts survive ("00012345" stays 8 digits).
type Cell struct {
	kind   CellKind
	text   string
	number float64
}

var numericRe = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// EmptyCell is the zero Cell.
var EmptyCell = Cell{}

func NumberCell(n float64) Cell {
	return Cell{kind: CellNumber, number: n}
}

// ParseCell classifies a raw reader value: blank is empty, a plain decimal
// literal is a number, anything else is text. "10.017.452" is text.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return EmptyCell
	}
	if numericRe.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return Cell{kind: CellNumber, text: s, number: n}
		}
	}
	return Cell{kind: CellText, text: s}
}

func (c Cell) Kind() CellKind {
	return c.kind
}

func (c Cell) IsEmpty() bool {
	return c.kind == CellEmpty
}

// Number is the numeric value of a CellNumber, 0 otherwise.
func (c Cell) Number() float64 {
	return c.number
}

// Text returns the trimmed text view. A number cell built by NumberCell has
// no source text and renders without exponent or trailing zeros.
func (c Cell) Text() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		if c.text != "" {
			return c.text
		}
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	default:
		return ""
	}
}

// Grid is a fully materialized sheet: one slice per physical row, rows may be ragged.
type Grid [][]Cell

// GridFromStrings converts reader output into a Grid.
func GridFromStrings(rows [][]string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, raw := range row {
			cells[j] = ParseCell(raw)
		}
		grid[i] = cells
	}
	return grid
}

// Text returns the text of (row, col), "" when out of range or col is NoColumn.
func (g Grid) Text(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col].Text()
}
