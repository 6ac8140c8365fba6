package schematic

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("schematic: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("schematic: all rows must have the same length")
	// ErrInvalidTile indicates a character outside the schematic alphabet.
	ErrInvalidTile = errors.New("schematic: invalid tile")
)

// TileError reports an invalid character and where it was found.
// It matches ErrInvalidTile under errors.Is.
type TileError struct {
	At   Coord
	Char rune
}

func (e *TileError) Error() string {
	return fmt.Sprintf("schematic: invalid tile at %d, %d : %q", e.At.X, e.At.Y, e.Char)
}

// Is reports whether target is ErrInvalidTile.
func (e *TileError) Is(target error) bool {
	return target == ErrInvalidTile
}
