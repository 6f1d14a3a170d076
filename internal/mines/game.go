package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Outcome int8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type Game struct {
	id         uuid.UUID
	difficulty Difficulty

	board   *Board
	outcome Outcome

	uncovered    int // safe cells only
	flaggedBombs int
	flaggedSafe  int

	log *logrus.Entry
}

// NewRand returns a generator seeded from the runtime's random source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewGame validates d and generates a fresh board for it. A nil r is
// replaced with [NewRand].
func NewGame(d Difficulty, r *rand.Rand) (*Game, error) {
	if r == nil {
		r = NewRand()
	}
	size, bombs := d.Unpack()
	board, err := GenerateBoard(size, bombs, r)
	if err != nil {
		return nil, err
	}
	g := newGame(d, board)
	g.log.WithField("difficulty", d.String()).Info("new game")
	return g, nil
}

func newGame(d Difficulty, board *Board) *Game {
	id := uuid.New()
	return &Game{
		id:         id,
		difficulty: d,
		board:      board,
		outcome:    InProgress,
		log:        Log.WithField("game", id.String()),
	}
}

func (g *Game) checkPoint(row, col int) error {
	if !g.board.InBounds(row, col) {
		return CoordinateError{Row: row, Col: col, Size: g.board.size}
	}
	return nil
}

// ID correlates the game's log entries.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Difficulty returns a copy of the configuration the game was built with.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) IsGameOver() bool {
	return g.outcome != InProgress
}

// IsWin reports whether the flagged cells are exactly the bombs and every
// safe cell is uncovered.
func (g *Game) IsWin() bool {
	return g.outcome == Won
}

func (g *Game) IsLose() bool {
	return g.outcome == Lost
}

func (g *Game) Uncovered() int {
	return g.uncovered
}

func (g *Game) Flags() int {
	return g.flaggedBombs + g.flaggedSafe
}

func (g *Game) View() BoardView {
	return g.board.View()
}

// Uncover opens a covered cell. A cell with no bomb neighbors opens its
// neighbors as well, transitively. Uncovering a bomb loses the game.
// Out-of-bounds coordinates return a [CoordinateError]; anything else that
// cannot change the board is a no-op.
func (g *Game) Uncover(row, col int) error {
	if err := g.checkPoint(row, col); err != nil {
		return err
	}
	if g.IsGameOver() || !g.board.cell(row, col).Covered {
		return nil
	}
	g.open(row, col)
	return nil
}

func (g *Game) open(row, col int) {
	opened := 0
	todo := [][2]int{{row, col}}
	for len(todo) > 0 && !g.IsGameOver() {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		c := g.board.cell(p[0], p[1])
		if !c.Covered {
			continue
		}

		c.Covered = false
		if c.Flagged {
			c.Flagged = false
			if c.Bomb {
				g.flaggedBombs--
			} else {
				g.flaggedSafe--
			}
		}

		if c.Bomb {
			c.Exploded = true
			g.outcome = Lost
			g.log.WithField("row", p[0]).WithField("col", p[1]).Info("bomb exploded")
			return
		}

		g.uncovered++
		opened++

		if g.uncovered == g.difficulty.SafeCells() {
			g.flagRemaining()
			break
		}

		if c.NeighborBombs == 0 {
			for nr, nc := range g.board.Neighbors(p[0], p[1]) {
				if g.board.cell(nr, nc).Covered {
					todo = append(todo, [2]int{nr, nc})
				}
			}
		}
	}

	g.log.WithField("opened", opened).Debug("cells uncovered")
	g.settle()
}

// flagRemaining marks every cell that is still covered, all of which are
// bombs once the last safe cell has been opened.
func (g *Game) flagRemaining() {
	for i := range g.board.cells {
		c := &g.board.cells[i]
		if c.Covered && !c.Flagged {
			c.Flagged = true
			g.flaggedBombs++
		}
	}
}

func (g *Game) settle() {
	if g.outcome != InProgress {
		return
	}
	if g.flaggedBombs == g.board.bombs &&
		g.flaggedSafe == 0 &&
		g.uncovered == g.difficulty.SafeCells() {
		g.outcome = Won
		g.log.Info("game won")
	}
}

// Flag toggles the flag on a covered cell. Flagging uncovered cells or
// flagging after the game is over does nothing.
func (g *Game) Flag(row, col int) error {
	if err := g.checkPoint(row, col); err != nil {
		return err
	}
	c := g.board.cell(row, col)
	if g.IsGameOver() || !c.Covered {
		return nil
	}

	delta := 1
	if c.Flagged {
		delta = -1
	}
	c.Flagged = !c.Flagged
	if c.Bomb {
		g.flaggedBombs += delta
	} else {
		g.flaggedSafe += delta
	}

	g.settle()
	return nil
}

// Chord uncovers all unflagged neighbors of an uncovered cell once the
// number of flags around it matches its bomb count.
func (g *Game) Chord(row, col int) error {
	if err := g.checkPoint(row, col); err != nil {
		return err
	}
	c := g.board.cell(row, col)
	if g.IsGameOver() || c.Covered || c.NeighborBombs == 0 {
		return nil
	}

	flags := 0
	var targets [][2]int
	for nr, nc := range g.board.Neighbors(row, col) {
		n := g.board.cell(nr, nc)
		if n.Flagged {
			flags++
		} else if n.Covered {
			targets = append(targets, [2]int{nr, nc})
		}
	}
	if flags != c.NeighborBombs {
		return nil
	}

	for _, t := range targets {
		if g.board.cell(t[0], t[1]).Covered {
			g.open(t[0], t[1])
		}
		if g.IsGameOver() {
			return nil
		}
	}
	return nil
}
