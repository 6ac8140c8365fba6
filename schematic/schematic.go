// Package schematic provides the grid model: construction from text,
// cell classification, symbol enumeration and neighbor lookup.
package schematic

import (
	"fmt"
	"strings"
)

// Parse builds a Schematic from multi-line text.
// Each line is trimmed of surrounding whitespace. Blank lines before the
// first row and after the last are dropped, so indented raw string literals
// parse unchanged; a blank line between rows stays an empty row and fails
// with ErrNonRectangular.
// Returns ErrEmptyGrid, ErrNonRectangular or a *TileError (ErrInvalidTile).
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Schematic, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return FromRows(lines)
}

// FromRows constructs a Schematic from pre-split rows, one string per row.
// Rows are used as given (no trimming). Every character is validated
// against the alphabet here, so later classification never meets an
// invalid rune.
// Complexity: O(W×H) time and memory.
func FromRows(rows []string) (*Schematic, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	w := -1
	for y, row := range rows {
		cells[y] = []rune(row)
		if w < 0 {
			w = len(cells[y])
		}
		if len(cells[y]) != w {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", y, len(cells[y]), w, ErrNonRectangular)
		}
		for x, r := range cells[y] {
			if _, ok := ClassifyRune(r); !ok {
				return nil, &TileError{At: Coord{X: x, Y: y}, Char: r}
			}
		}
	}

	return &Schematic{Width: w, Height: len(cells), cells: cells}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (s *Schematic) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// At returns the character stored at c. It panics if c is out of bounds.
func (s *Schematic) At(c Coord) rune {
	if !s.InBounds(c) {
		panic(fmt.Sprintf("schematic: At%s outside %dx%d grid", c, s.Width, s.Height))
	}
	return s.cells[c.Y][c.X]
}

// Classify returns the CellKind of c, or OutOfBounds if c lies outside the grid.
// Complexity: O(1).
func (s *Schematic) Classify(c Coord) CellKind {
	if !s.InBounds(c) {
		return OutOfBounds
	}
	kind, ok := ClassifyRune(s.cells[c.Y][c.X])
	if !ok {
		// unreachable: FromRows validates every cell
		panic(&TileError{At: c, Char: s.cells[c.Y][c.X]})
	}
	return kind
}

// Symbols returns every Symbol cell in row-major order.
// Complexity: O(W×H).
func (s *Schematic) Symbols() []Coord {
	var out []Coord
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := Coord{X: x, Y: y}
			if s.Classify(c) == Symbol {
				out = append(out, c)
			}
		}
	}
	return out
}

// Gears returns every GearMarker cell in row-major order, regardless of how
// many numbers surround it.
func (s *Schematic) Gears() []Coord {
	var out []Coord
	for _, c := range s.Symbols() {
		if s.At(c) == GearMarker {
			out = append(out, c)
		}
	}
	return out
}

// Neighbors returns the in-bounds king-move neighbors of c, excluding c.
// Interior cells yield 8, edge cells 5 and corner cells 3.
// Complexity: O(1).
func (s *Schematic) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if !s.InBounds(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// String renders the grid back as newline-separated rows.
func (s *Schematic) String() string {
	var b strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
