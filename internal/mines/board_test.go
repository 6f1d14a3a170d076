package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveNeighborBombs(b *Board, row, col int) (count int) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if 0 <= r && r < b.Size() && 0 <= c && c < b.Size() && b.At(r, c).Bomb {
				count++
			}
		}
	}
	return
}

func TestGenerateBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		size, bombs int
	}{
		{"1x1(0)", 1, 0},
		{"2x2(3)", 2, 3},
		{"3x3(1)", 3, 1},
		{"3x3(8)", 3, 8},
		{"10x10(15)", 10, 15},
		{"12x12(20)", 12, 20},
		{"16x16(99)", 16, 99},
		{"30x30(899)", 30, 899},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				b, err := GenerateBoard(test.size, test.bombs, r)
				require.NoError(t, err)
				require.Equal(t, test.size, b.Size())
				assert.Equal(t, test.bombs, b.Bombs())

				bombs := 0
				for row := range b.Size() {
					for col := range b.Size() {
						c := b.At(row, col)
						assert.True(t, c.Covered)
						assert.False(t, c.Flagged)
						assert.False(t, c.Exploded)
						if c.Bomb {
							bombs++
							continue
						}
						assert.Equal(t, naiveNeighborBombs(b, row, col), c.NeighborBombs,
							"neighbor count at %d:%d", row, col)
					}
				}
				assert.Equal(t, test.bombs, bombs)
			}
		})
	}
}

func TestGenerateBoardDeterministic(t *testing.T) {
	a, err := GenerateBoard(16, 40, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	b, err := GenerateBoard(16, 40, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	assert.Equal(t, a.View(), b.View())
}

func TestGenerateBoardInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		size, bombs int
	}{
		{"zero size", 0, 0},
		{"negative size", -3, 1},
		{"negative bombs", 4, -1},
		{"full board", 3, 9},
		{"overfull board", 3, 10},
		{"single cell bomb", 1, 1},
		{"too large", MaxSize + 1, 1},
		{"size squared overflows", 1<<32 + 1, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := GenerateBoard(test.size, test.bombs, rand.New(rand.NewPCG(1, 2)))
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)

			var ce ConfigurationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, test.size, ce.Size)
			assert.Equal(t, test.bombs, ce.Bombs)
			assert.NotContains(t, ce.Error(), "unknown error")
		})
	}
}

func TestNeighbors(t *testing.T) {
	b := newBoard(3)

	count := func(row, col int) (n int) {
		for r, c := range b.Neighbors(row, col) {
			assert.True(t, b.InBounds(r, c))
			assert.False(t, r == row && c == col)
			n++
		}
		return
	}

	assert.Equal(t, 3, count(0, 0))
	assert.Equal(t, 5, count(0, 1))
	assert.Equal(t, 8, count(1, 1))
	assert.Equal(t, 3, count(2, 2))
	assert.Equal(t, 0, func() (n int) {
		for range newBoard(1).Neighbors(0, 0) {
			n++
		}
		return
	}())
}

func TestBoardWithBombs(t *testing.T) {
	b := boardWithBombs(3, [2]int{0, 0}, [2]int{2, 2}, [2]int{0, 0})
	assert.Equal(t, 2, b.Bombs())
	assert.Equal(t, 2, b.At(1, 1).NeighborBombs)
	assert.Equal(t, 1, b.At(0, 1).NeighborBombs)
	assert.Equal(t, 0, b.At(0, 2).NeighborBombs)
	assert.Equal(t, 0, b.At(2, 0).NeighborBombs)
}

func TestViewIsSnapshot(t *testing.T) {
	b := boardWithBombs(2, [2]int{0, 0})
	v := b.View()
	for _, row := range v.Rows() {
		for i := range row {
			row[i].Covered = false
			row[i].Bomb = false
		}
	}
	assert.True(t, b.At(0, 0).Covered)
	assert.True(t, b.At(0, 0).Bomb)
	assert.True(t, b.View().At(0, 0).Bomb)
}

func TestCellState(t *testing.T) {
	tests := []struct {
		name   string
		cell   CellView
		reveal bool
		want   CellState
	}{
		{"covered", CellView{Covered: true}, false, Covered},
		{"covered bomb hidden", CellView{Covered: true, Bomb: true}, false, Covered},
		{"covered bomb revealed", CellView{Covered: true, Bomb: true}, true, Bomb},
		{"flag", CellView{Covered: true, Flagged: true}, false, Flagged},
		{"bad flag revealed", CellView{Covered: true, Flagged: true}, true, BadFlag},
		{"good flag revealed", CellView{Covered: true, Flagged: true, Bomb: true}, true, Flagged},
		{"exploded", CellView{Bomb: true, Exploded: true}, false, Exploded},
		{"empty", CellView{}, false, 0},
		{"number", CellView{NeighborBombs: 3}, true, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.cell.State(test.reveal))
		})
	}
}

func TestCellStateString(t *testing.T) {
	assert.Equal(t, ".", Covered.String())
	assert.Equal(t, "F", Flagged.String())
	assert.Equal(t, "*", Bomb.String())
	assert.Equal(t, "X", Exploded.String())
	assert.Equal(t, "!", BadFlag.String())
	assert.Equal(t, " ", CellState(0).String())
	assert.Equal(t, "8", CellState(8).String())
	assert.Equal(t, "?", CellState(9).String())
}

func TestViewToString(t *testing.T) {
	b := boardWithBombs(2, [2]int{0, 0})
	b.cell(1, 1).Covered = false
	b.cell(0, 1).Flagged = true

	assert.Equal(t, ". F \n. 1 \n", b.View().ToString(false))
	assert.Equal(t, "* ! \n. 1 \n", b.View().ToString(true))
}
