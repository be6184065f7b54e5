package mdbox

import "math"

// Cell is a terminal cell offset or extent. Coordinates never go negative
// and never exceed what a terminal can address, so arithmetic saturates
// instead of wrapping.
type Cell uint16

// MaxCell is the largest representable cell coordinate.
const MaxCell = Cell(math.MaxUint16)

func (c Cell) add(n Cell) Cell {
	if c > MaxCell-n {
		return MaxCell
	}
	return c + n
}

func (c Cell) sub(n Cell) Cell {
	if n > c {
		return 0
	}
	return c - n
}
