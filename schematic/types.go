// Package schematic defines core types, cell kinds and the alphabet
// for the schematic package of github.com/katalvlaran/schematic.
package schematic

import "fmt"

// CellKind classifies a single schematic cell.
type CellKind int

const (
	// Empty is the '.' marker.
	Empty CellKind = iota
	// Symbol is any punctuation character from the schematic alphabet.
	Symbol
	// Digit is '0'..'9'.
	Digit
	// OutOfBounds is returned for coordinates outside the grid. It is never stored.
	OutOfBounds
)

// String returns the lower-case name of the kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Symbol:
		return "symbol"
	case Digit:
		return "digit"
	case OutOfBounds:
		return "out-of-bounds"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

const (
	// EmptyMarker is the character of an Empty cell.
	EmptyMarker = '.'
	// GearMarker is the symbol that may act as a gear.
	GearMarker = '*'
)

// ClassifyRune maps r onto its CellKind. ok is false when r is not part of
// the schematic alphabet. '.' is Empty, never a Symbol.
func ClassifyRune(r rune) (kind CellKind, ok bool) {
	switch r {
	case '!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '-', '+', '=', '/':
		return Symbol, true
	case EmptyMarker:
		return Empty, true
	}
	if r >= '0' && r <= '9' {
		return Digit, true
	}
	return 0, false
}

// Coord addresses a cell by column X and row Y, both zero-based.
// Coord is comparable and is used directly as a map key.
type Coord struct {
	X, Y int
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Span is a maximal horizontal run of digits within one row.
// Start is the leftmost cell and the identity of the span.
type Span struct {
	Start Coord
	Len   int
	Value uint64
}

func (s Span) String() string {
	return fmt.Sprintf("%d@%s", s.Value, s.Start)
}

// Gear is a GearMarker cell adjacent to exactly two distinct spans.
// Parts are ordered by Start; Ratio is Parts[0].Value * Parts[1].Value.
type Gear struct {
	At    Coord
	Parts [2]Span
	Ratio uint64
}

// Schematic is an immutable rectangular grid of runes.
// Width and Height define dimensions; cells[y][x] holds the input character.
type Schematic struct {
	Width, Height int
	cells         [][]rune
}

// neighborOffsets lists the 8 king-move offsets: N, NE, E, SE, S, SW, W, NW.
// The origin itself is excluded.
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
