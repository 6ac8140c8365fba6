package schematic_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/schematic/schematic"
)

// SolveSuite exercises both aggregate queries under various scenarios.
type SolveSuite struct {
	suite.Suite
}

// TestCanonical checks the well-known 10×10 example.
func (s *SolveSuite) TestCanonical() {
	g := mustParse(s.T(), canonical)
	require.Equal(s.T(), uint64(4361), schematic.SolvePart1(g))
	require.Equal(s.T(), uint64(467835), schematic.SolvePart2(g))
}

// TestPartNumbersSorted verifies the deduplicated spans come back sorted by start.
func (s *SolveSuite) TestPartNumbersSorted() {
	g := mustParse(s.T(), canonical)
	var got []uint64
	for _, sp := range g.PartNumbers() {
		got = append(got, sp.Value)
	}
	require.Equal(s.T(), []uint64{467, 35, 633, 617, 592, 755, 664, 598}, got)
}

// TestTwoSymbolsOneNumber ensures a number between two symbols counts once.
func (s *SolveSuite) TestTwoSymbolsOneNumber() {
	g := mustParse(s.T(), ".*.\n.5.\n.#.")
	require.Equal(s.T(), uint64(5), schematic.SolvePart1(g))
}

// TestOneSymbolManyCells ensures several probes into one span collapse.
func (s *SolveSuite) TestOneSymbolManyCells() {
	g := mustParse(s.T(), "123\n.+.")
	require.Equal(s.T(), uint64(123), schematic.SolvePart1(g))
}

// TestCornerNumber checks a top-left number seen by a symbol with only 3 neighbors.
func (s *SolveSuite) TestCornerNumber() {
	g := mustParse(s.T(), "12\n*.")
	require.Equal(s.T(), uint64(12), schematic.SolvePart1(g))
	require.Equal(s.T(), uint64(0), schematic.SolvePart2(g))
}

// TestNoSymbols yields zero for both parts.
func (s *SolveSuite) TestNoSymbols() {
	g := mustParse(s.T(), "12.\n..3")
	require.Zero(s.T(), schematic.SolvePart1(g))
	require.Zero(s.T(), schematic.SolvePart2(g))
	require.Empty(s.T(), g.PartNumbers())
}

// TestGearExactlyTwo covers a gear reaching each number through two cells.
func (s *SolveSuite) TestGearExactlyTwo() {
	g := mustParse(s.T(), "12.\n.*.\n.34")
	gears := g.GearRatios()
	require.Len(s.T(), gears, 1)
	require.Equal(s.T(), schematic.Coord{X: 1, Y: 1}, gears[0].At)
	require.Equal(s.T(), uint64(12), gears[0].Parts[0].Value)
	require.Equal(s.T(), uint64(34), gears[0].Parts[1].Value)
	require.Equal(s.T(), uint64(408), schematic.SolvePart2(g))
}

// TestGearWrongCount verifies 1 or 3 neighbors contribute nothing.
func (s *SolveSuite) TestGearWrongCount() {
	three := mustParse(s.T(), "1.2\n.*.\n3..")
	require.Zero(s.T(), schematic.SolvePart2(three))
	require.Equal(s.T(), uint64(6), schematic.SolvePart1(three))

	one := mustParse(s.T(), "7*.")
	require.Zero(s.T(), schematic.SolvePart2(one))
}

// TestGearSharedSpan checks per-gear deduplication: one span may feed two gears.
func (s *SolveSuite) TestGearSharedSpan() {
	g := mustParse(s.T(), "2*3*4")
	require.Equal(s.T(), uint64(2*3+3*4), schematic.SolvePart2(g))
	require.Equal(s.T(), uint64(9), schematic.SolvePart1(g))
}

// TestNonGearSymbol ensures only '*' can be a gear.
func (s *SolveSuite) TestNonGearSymbol() {
	g := mustParse(s.T(), "2#3")
	require.Zero(s.T(), schematic.SolvePart2(g))
	require.Equal(s.T(), uint64(5), schematic.SolvePart1(g))
}

// TestSolveSuite runs SolveSuite.
func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

//----------------------------------------------------------------------------//
// Oracle comparison on random grids
//----------------------------------------------------------------------------//

// touches reports whether any cell of sp is within one step of c.
func touches(sp schematic.Span, c schematic.Coord) bool {
	if c.Y < sp.Start.Y-1 || c.Y > sp.Start.Y+1 {
		return false
	}
	return c.X >= sp.Start.X-1 && c.X <= sp.Start.X+sp.Len
}

func randomGrid(rng *rand.Rand, w, h int) string {
	const alphabet = "..........0123456789*#+"
	rows := make([]string, h)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < w; x++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// TestSolve_MatchesOracle compares both parts with a span-centric brute force
// on seeded random grids and checks Part 1 never exceeds the grand total.
func TestSolve_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		text := randomGrid(rng, 1+rng.Intn(12), 1+rng.Intn(12))
		g := mustParse(t, text)
		spans := g.Numbers()

		var total, want1 uint64
		for _, sp := range spans {
			total += sp.Value
			for _, c := range g.Symbols() {
				if touches(sp, c) {
					want1 += sp.Value
					break
				}
			}
		}

		var want2 uint64
		for _, c := range g.Gears() {
			var adj []schematic.Span
			for _, sp := range spans {
				if touches(sp, c) {
					adj = append(adj, sp)
				}
			}
			if len(adj) == 2 {
				want2 += adj[0].Value * adj[1].Value
			}
		}

		got1 := schematic.SolvePart1(g)
		require.Equal(t, want1, got1, "part 1 on grid:\n%s", text)
		require.LessOrEqual(t, got1, total)
		require.Equal(t, want2, schematic.SolvePart2(g), "part 2 on grid:\n%s", text)
	}
}
