package schematic

import "sort"

// PartNumbers returns every distinct span adjacent to at least one symbol,
// sorted by start. Deduplication is global: a span touching several symbols,
// or one symbol through several cells, appears once.
//
// Behavior:
//  1. Enumerate symbols.
//  2. For each, map digit neighbors to their span starts.
//  3. Collect starts into one set shared by all symbols.
//  4. Read each unique span.
//
// Complexity: O(S×W) time, O(S) memory, S = number of symbols.
func (s *Schematic) PartNumbers() []Span {
	seen := make(map[Coord]struct{})
	for _, sym := range s.Symbols() {
		for _, start := range s.adjacentStarts(sym) {
			seen[start] = struct{}{}
		}
	}

	starts := make([]Coord, 0, len(seen))
	for c := range seen {
		starts = append(starts, c)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Less(starts[j]) })

	out := make([]Span, 0, len(starts))
	for _, c := range starts {
		out = append(out, s.SpanAt(c))
	}
	return out
}

// GearRatios returns one Gear for every GearMarker adjacent to exactly two
// distinct spans, in row-major order of the marker. Deduplication is local
// to each marker: the same span may belong to several gears.
// Markers touching 0, 1 or 3+ spans are not gears and are omitted.
// Complexity: O(G×W), G = number of '*' cells.
func (s *Schematic) GearRatios() []Gear {
	var out []Gear
	for _, g := range s.Gears() {
		local := make(map[Coord]struct{}, 2)
		var starts []Coord
		for _, start := range s.adjacentStarts(g) {
			if _, ok := local[start]; ok {
				continue
			}
			local[start] = struct{}{}
			starts = append(starts, start)
		}
		if len(starts) != 2 {
			continue
		}
		if starts[1].Less(starts[0]) {
			starts[0], starts[1] = starts[1], starts[0]
		}
		a, b := s.SpanAt(starts[0]), s.SpanAt(starts[1])
		out = append(out, Gear{At: g, Parts: [2]Span{a, b}, Ratio: a.Value * b.Value})
	}
	return out
}

// SolvePart1 returns the sum of every distinct number adjacent to a symbol.
func SolvePart1(s *Schematic) uint64 {
	var sum uint64
	for _, sp := range s.PartNumbers() {
		sum += sp.Value
	}
	return sum
}

// SolvePart2 returns the sum of the gear ratios of every gear.
func SolvePart2(s *Schematic) uint64 {
	var sum uint64
	for _, g := range s.GearRatios() {
		sum += g.Ratio
	}
	return sum
}
