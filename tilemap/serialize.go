package tilemap

import (
	"fmt"
	"strings"
)

// Cell symbols used by String and Parse:
//
//	'.' transparent and walkable (open floor)
//	's' walkable but not transparent (e.g. tall grass)
//	'o' transparent but not walkable (e.g. a chasm)
//	'#' neither (solid wall)
const (
	symbolFloor       = '.'
	symbolOpaqueFloor = 's'
	symbolChasm       = 'o'
	symbolWall        = '#'
)

// String renders the map one text row per cell row using the four-symbol
// form above. The output round-trips through Parse.
// Complexity: O(W×H).
func (m *Map) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			b.WriteRune(symbol(m.cells[m.index(x, y)]))
		}
		if y < m.height-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// symbol maps a cell's property pair to its serialized rune.
func symbol(c Cell) rune {
	switch {
	case c.Transparent && c.Walkable:
		return symbolFloor
	case c.Walkable:
		return symbolOpaqueFloor
	case c.Transparent:
		return symbolChasm
	default:
		return symbolWall
	}
}

// Parse builds a Map from its text form: one row per line, one symbol per
// cell. Spaces and carriage returns are ignored, blank lines are skipped,
// so fixture literals may be indented freely.
// Returns ErrEmptyMapRepresentation, ErrRaggedMapRepresentation, or
// ErrUnknownSymbol (wrapped with the offending rune and position).
// Complexity: O(W×H).
func Parse(s string) (*Map, error) {
	cleaned := strings.NewReplacer(" ", "", "\r", "", "\t", "").Replace(s)
	var rows []string
	for _, line := range strings.Split(cleaned, "\n") {
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMapRepresentation
	}

	height := len(rows)
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedMapRepresentation
		}
	}

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, r := range row {
			transparent, walkable, ok := properties(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, r, x, y)
			}
			_ = m.SetCellProperties(x, y, transparent, walkable)
		}
	}

	return m, nil
}

// properties is the inverse of symbol.
func properties(r rune) (transparent, walkable, ok bool) {
	switch r {
	case symbolFloor:
		return true, true, true
	case symbolOpaqueFloor:
		return false, true, true
	case symbolChasm:
		return true, false, true
	case symbolWall:
		return false, false, true
	default:
		return false, false, false
	}
}
