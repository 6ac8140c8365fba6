package schematic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schematic/schematic"
)

// TestSpanStart mirrors lookups from the middle and end of canonical numbers.
func TestSpanStart(t *testing.T) {
	s := mustParse(t, canonical)
	assert.Equal(t, schematic.Coord{X: 0, Y: 0}, s.SpanStart(schematic.Coord{X: 1, Y: 0}))
	assert.Equal(t, schematic.Coord{X: 5, Y: 9}, s.SpanStart(schematic.Coord{X: 6, Y: 9}))
	assert.Equal(t, schematic.Coord{X: 5, Y: 9}, s.SpanStart(schematic.Coord{X: 5, Y: 9}))
	assert.Equal(t, schematic.Coord{X: 7, Y: 5}, s.SpanStart(schematic.Coord{X: 8, Y: 5}))
}

// TestReadNumber reads whole spans from their start and suffixes from inside.
func TestReadNumber(t *testing.T) {
	s := mustParse(t, canonical)
	assert.Equal(t, uint64(467), s.ReadNumber(schematic.Coord{X: 0, Y: 0}))
	assert.Equal(t, uint64(598), s.ReadNumber(schematic.Coord{X: 5, Y: 9}))
	assert.Equal(t, uint64(67), s.ReadNumber(schematic.Coord{X: 1, Y: 0}))

	// span running to the right edge
	edge := mustParse(t, "..42")
	assert.Equal(t, uint64(42), edge.ReadNumber(schematic.Coord{X: 2, Y: 0}))

	big := mustParse(t, "18446744073709551615")
	assert.Equal(t, uint64(18446744073709551615), big.ReadNumber(schematic.Coord{}))
}

// TestSpan_Panics checks span helpers reject non-digit cells.
func TestSpan_Panics(t *testing.T) {
	s := mustParse(t, "1.*")
	assert.Panics(t, func() { s.SpanStart(schematic.Coord{X: 1, Y: 0}) })
	assert.Panics(t, func() { s.ReadNumber(schematic.Coord{X: 2, Y: 0}) })
	assert.Panics(t, func() { s.SpanAt(schematic.Coord{X: 5, Y: 0}) })

	overflow := mustParse(t, "18446744073709551616")
	assert.Panics(t, func() { overflow.ReadNumber(schematic.Coord{}) })
}

// TestSpanIdentity checks that every cell of every run resolves to the same
// start and the same value.
func TestSpanIdentity(t *testing.T) {
	s := mustParse(t, canonical)
	spans := s.Numbers()
	require.Len(t, spans, 10)
	for _, sp := range spans {
		for i := 0; i < sp.Len; i++ {
			c := schematic.Coord{X: sp.Start.X + i, Y: sp.Start.Y}
			assert.Equal(t, sp.Start, s.SpanStart(c), "cell %v of %v", c, sp)
			assert.Equal(t, sp.Value, s.ReadNumber(s.SpanStart(c)), "cell %v of %v", c, sp)
			assert.Equal(t, sp, s.SpanAt(c))
		}
	}
}

// TestNumbers lists every span in row-major order, including the
// ones no symbol touches.
func TestNumbers(t *testing.T) {
	s := mustParse(t, canonical)
	var got []uint64
	for _, sp := range s.Numbers() {
		got = append(got, sp.Value)
	}
	assert.Equal(t, []uint64{467, 114, 35, 633, 617, 58, 592, 755, 664, 598}, got)

	// spans never cross rows
	wrap := mustParse(t, "..12\n34..")
	spans := wrap.Numbers()
	require.Len(t, spans, 2)
	assert.Equal(t, schematic.Span{Start: schematic.Coord{X: 2, Y: 0}, Len: 2, Value: 12}, spans[0])
	assert.Equal(t, schematic.Span{Start: schematic.Coord{X: 0, Y: 1}, Len: 2, Value: 34}, spans[1])
	assert.Equal(t, "12@(2,0)", spans[0].String())
}
