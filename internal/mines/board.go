package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
)

type Board struct {
	size  int
	bombs int
	cells []Cell
}

func newBoard(size int) *Board {
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = newCell()
	}
	return &Board{size: size, cells: cells}
}

// GenerateBoard places bombs uniformly at random by rejection sampling and
// precomputes neighbor counts. The configuration is validated first, so
// sampling always terminates.
func GenerateBoard(size, bombs int, r *rand.Rand) (*Board, error) {
	if err := Custom(size, bombs).Validate(); err != nil {
		return nil, err
	}

	b := newBoard(size)

	attempts := 0
	for b.bombs < bombs {
		attempts++
		i := r.IntN(size)*size + r.IntN(size)
		if b.cells[i].Bomb {
			continue
		}
		b.cells[i].Bomb = true
		b.bombs++
	}

	b.countNeighbors()

	Log.WithField("size", size).
		WithField("bombs", bombs).
		WithField("attempts", attempts).
		Debug("board generated")

	return b, nil
}

// boardWithBombs builds a board with bombs at the given (row, col) pairs.
func boardWithBombs(size int, bombs ...[2]int) *Board {
	b := newBoard(size)
	for _, p := range bombs {
		c := b.cell(p[0], p[1])
		if !c.Bomb {
			c.Bomb = true
			b.bombs++
		}
	}
	b.countNeighbors()
	return b
}

func (b *Board) countNeighbors() {
	for row := range b.size {
		for col := range b.size {
			c := b.cell(row, col)
			if c.Bomb {
				continue
			}
			c.NeighborBombs = 0
			for nr, nc := range b.Neighbors(row, col) {
				if b.cell(nr, nc).Bomb {
					c.NeighborBombs++
				}
			}
		}
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Bombs() int {
	return b.bombs
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.size && 0 <= col && col < b.size
}

func (b *Board) cell(row, col int) *Cell {
	return &b.cells[row*b.size+col]
}

// At returns a copy of the cell. Panics if out of bounds.
func (b *Board) At(row, col int) Cell {
	return *b.cell(row, col)
}

// Neighbors yields the Moore neighborhood of (row, col) clipped at the edges,
// excluding the cell itself.
func (b *Board) Neighbors(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, c := row+dr, col+dc
				if (dr == 0 && dc == 0) || !b.InBounds(r, c) {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

func (b *Board) View() BoardView {
	cells := make([]CellView, len(b.cells))
	for i, c := range b.cells {
		cells[i] = CellView{
			Covered:       c.Covered,
			Flagged:       c.Flagged,
			Exploded:      c.Exploded,
			Bomb:          c.Bomb,
			NeighborBombs: c.NeighborBombs,
		}
	}
	return BoardView{size: b.size, cells: cells}
}

// BoardView is a snapshot of a board. Changing it has no effect on the game
// it was taken from.
type BoardView struct {
	size  int
	cells []CellView
}

func (v BoardView) Size() int {
	return v.size
}

func (v BoardView) At(row, col int) CellView {
	return v.cells[row*v.size+col]
}

// Rows yields each row of the view in order.
func (v BoardView) Rows() iter.Seq2[int, []CellView] {
	return func(yield func(int, []CellView) bool) {
		for row := range v.size {
			if !yield(row, v.cells[row*v.size:(row+1)*v.size:(row+1)*v.size]) {
				return
			}
		}
	}
}

func (v BoardView) ToString(reveal bool) string {
	var b strings.Builder
	for _, row := range v.Rows() {
		for _, c := range row {
			fmt.Fprint(&b, c.State(reveal).String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
