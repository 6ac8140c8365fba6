package schematic

import (
	"fmt"
	"strconv"
	"strings"
)

// mustDigit panics unless c is a Digit cell. Span helpers are only ever
// called on digits found through Classify.
func (s *Schematic) mustDigit(op string, c Coord) {
	if k := s.Classify(c); k != Digit {
		panic(fmt.Sprintf("schematic: %s%s on %s cell", op, c, k))
	}
}

// SpanStart walks left from the digit at c and returns the leftmost cell of
// the maximal digit run containing it. Every cell of a run maps to the same
// start, which makes the start a stable identity for the number.
// Panics if c is not a Digit.
// Complexity: O(W).
func (s *Schematic) SpanStart(c Coord) Coord {
	s.mustDigit("SpanStart", c)
	for c.X > 0 && s.Classify(Coord{X: c.X - 1, Y: c.Y}) == Digit {
		c.X--
	}
	return c
}

// ReadNumber reads digits rightwards from c until a non-digit or the row
// end and returns their decimal value. c is treated as the start of the
// number; pass SpanStart(c) to read the whole span.
// Panics if c is not a Digit or the value overflows uint64.
// Complexity: O(W).
func (s *Schematic) ReadNumber(c Coord) uint64 {
	s.mustDigit("ReadNumber", c)
	var digits strings.Builder
	for x := c.X; x < s.Width && s.Classify(Coord{X: x, Y: c.Y}) == Digit; x++ {
		digits.WriteRune(s.cells[c.Y][x])
	}
	n, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("schematic: ReadNumber%s: %v", c, err))
	}
	return n
}

// SpanAt returns the full span containing the digit at c.
// Panics if c is not a Digit.
func (s *Schematic) SpanAt(c Coord) Span {
	start := s.SpanStart(c)
	n := 0
	for x := start.X; x < s.Width && s.Classify(Coord{X: x, Y: start.Y}) == Digit; x++ {
		n++
	}
	return Span{Start: start, Len: n, Value: s.ReadNumber(start)}
}

// Numbers returns every span in the grid in row-major order of their starts,
// whether or not it touches a symbol.
// Complexity: O(W×H).
func (s *Schematic) Numbers() []Span {
	var out []Span
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := Coord{X: x, Y: y}
			if s.Classify(c) != Digit {
				continue
			}
			sp := s.SpanAt(c)
			out = append(out, sp)
			x += sp.Len - 1
		}
	}
	return out
}

// adjacentStarts returns the span starts of every digit neighbor of c,
// possibly with duplicates.
func (s *Schematic) adjacentStarts(c Coord) []Coord {
	var out []Coord
	for _, n := range s.Neighbors(c) {
		if s.Classify(n) == Digit {
			out = append(out, s.SpanStart(n))
		}
	}
	return out
}
