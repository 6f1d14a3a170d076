package mines

import "strconv"

type Cell struct {
	Bomb          bool
	Covered       bool
	Flagged       bool
	Exploded      bool
	NeighborBombs int
}

func newCell() Cell {
	return Cell{Covered: true}
}

type CellState int8

const (
	Covered  CellState = -2
	Flagged  CellState = -1
	Bomb     CellState = 64 // post-game-over
	Exploded CellState = 65
	BadFlag  CellState = 66 // post-game-over
	// 0-8 for uncovered cells with given number of bomb neighbors
)

func (s CellState) String() string {
	switch {
	case s == Covered:
		return "."
	case s == Flagged:
		return "F"
	case s == Bomb:
		return "*"
	case s == Exploded:
		return "X"
	case s == BadFlag:
		return "!"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// CellView is a read-only copy of a [Cell].
type CellView struct {
	Covered       bool
	Flagged       bool
	Exploded      bool
	Bomb          bool // only meaningful when revealing
	NeighborBombs int
}

// State maps the cell to what a player may see. With reveal set, covered
// bombs and wrongly flagged cells are shown as well.
func (c CellView) State(reveal bool) CellState {
	switch {
	case c.Exploded:
		return Exploded
	case c.Flagged:
		if reveal && !c.Bomb {
			return BadFlag
		}
		return Flagged
	case c.Covered:
		if reveal && c.Bomb {
			return Bomb
		}
		return Covered
	case c.Bomb:
		return Bomb
	default:
		return CellState(c.NeighborBombs)
	}
}
