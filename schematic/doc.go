// Package schematic treats an engine schematic, a 2D grid of digits,
// empty markers and symbol punctuation, as a spatial model for locating
// part numbers and gear ratios.
//
// What:
//
//   - Schematic wraps an immutable rectangular grid of runes parsed from text.
//   - Classifies every cell as Empty ('.'), Digit ('0'..'9') or Symbol.
//   - Reconstructs number spans (maximal horizontal digit runs) from any
//     digit coordinate inside them.
//   - Enumerates the 8 king-move neighbors of a cell, clipped to the grid.
//   - Aggregates numbers by two adjacency rules:
//   - SolvePart1: sum of every distinct number touching any symbol.
//   - SolvePart2: sum of n1*n2 over every '*' touching exactly two numbers.
//
// Why:
//
//   - Puzzle-style grids where numbers are spread over several cells and
//     adjacency is defined per cell, not per number.
//   - The span start is the stable identity of a number, so the same number
//     reached through several neighbor cells is counted once.
//
// Complexity:
//
//   - Parse:       O(W×H), Memory: O(W×H).
//   - Symbols:     O(W×H).
//   - Neighbors:   O(1) (at most 8 candidates).
//   - SpanStart:   O(W), ReadNumber: O(W).
//   - SolvePart1:  O(S×W) where S = number of symbols, Memory: O(S).
//   - SolvePart2:  O(G×W) where G = number of gears.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths after trimming.
//   - ErrInvalidTile:    a character outside the schematic alphabet
//     (returned as *TileError carrying the coordinate and rune).
//
// Out-of-bounds access through At, and SpanStart/ReadNumber on a non-digit
// cell, are programmer errors and panic.
package schematic
