package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var ErrTooManyInvalidCommands = errors.New("too many invalid commands")

const helpText = `Commands (rows and columns start at 1):
  uncover <row> <col>   open a cell (u, o)
  flag <row> <col>      toggle a flag on a covered cell (f)
  chord <row> <col>     open the neighbors of a satisfied number (c)
  help                  show this message (h, ?)
  quit                  leave the game (q)
An example command would be: flag 1 1`

const defaultMaxInvalid = 3

type Options struct {
	// Difficulty skips the menu when set.
	Difficulty *mines.Difficulty
	Rand       *rand.Rand
	Logger     *logrus.Logger

	// MaxInvalid is how many unknown commands in a row end the session.
	MaxInvalid int
}

type Session struct {
	in  io.Reader
	out io.Writer
	rnd *rand.Rand
	log *logrus.Entry

	difficulty *mines.Difficulty
	maxInvalid int
}

func NewSession(in io.Reader, out io.Writer, opts *Options) *Session {
	if opts == nil {
		opts = &Options{}
	}

	s := &Session{
		in:         in,
		out:        out,
		rnd:        opts.Rand,
		difficulty: opts.Difficulty,
		maxInvalid: opts.MaxInvalid,
	}
	if s.rnd == nil {
		s.rnd = mines.NewRand()
	}
	if s.maxInvalid <= 0 {
		s.maxInvalid = defaultMaxInvalid
	}
	if opts.Logger != nil {
		s.log = logrus.NewEntry(opts.Logger)
	} else {
		s.log = logrus.NewEntry(mines.Log)
	}
	return s
}

type lineReader struct {
	lines chan string
	err   error
}

func readLines(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lr.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		lr.err = scanner.Err()
	}()
	return lr
}

// next returns [io.EOF] once the input is exhausted.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) render(g *mines.Game, reveal bool) {
	if err := Render(s.out, g.View(), reveal); err != nil {
		s.log.WithError(err).Error("unable to render board")
		return
	}
	if !reveal {
		fmt.Fprintf(s.out, "Flags: %d/%d\n", g.Flags(), g.Difficulty().Bombs)
	}
}

func (s *Session) chooseDifficulty(ctx context.Context, lr *lineReader) (mines.Difficulty, error) {
	if s.difficulty != nil {
		return *s.difficulty, s.difficulty.Validate()
	}
	fmt.Fprint(s.out, difficultyMenu())
	line, err := lr.next(ctx)
	if err != nil {
		return mines.Difficulty{}, err
	}
	d, err := ParseDifficulty(line)
	if err != nil {
		s.println("Invalid input. Exiting game.")
		return mines.Difficulty{}, err
	}
	return d, nil
}

// Run plays one game. It returns nil when the game ends, the player quits or
// the input is exhausted.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lr := readLines(ctx, s.in)

	s.println("Welcome to Minesweeper!")

	d, err := s.chooseDifficulty(ctx, lr)
	if errors.Is(err, io.EOF) {
		s.log.Debug("input closed before a difficulty was chosen")
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to choose difficulty: %w", err)
	}

	game, err := mines.NewGame(d, s.rnd)
	if err != nil {
		return fmt.Errorf("unable to start game: %w", err)
	}
	log := s.log.WithField("game", game.ID().String())

	s.render(game, false)
	s.println(helpText)

	invalid := 0
	for !game.IsGameOver() {
		s.println("Enter your selection:")
		line, err := lr.next(ctx)
		if errors.Is(err, io.EOF) {
			log.Info("input closed, leaving game")
			return nil
		}
		if err != nil {
			return err
		}

		c, err := parseCommand(line)
		switch {
		case errors.Is(err, ErrUnknownCommand):
			invalid++
			log.WithField("line", line).WithField("invalid", invalid).Debug("unknown command")
			if invalid >= s.maxInvalid {
				s.println("Too many invalid commands. Exiting.")
				return ErrTooManyInvalidCommands
			}
			s.println("Invalid command. Please try again.")
			continue
		case errors.Is(err, ErrBadArgs):
			s.println("Invalid command. Please try again.")
			continue
		case errors.Is(err, ErrBadCoordinates):
			s.println("Invalid input. Please enter valid row and column (e.g. '3 4'):")
			continue
		case err != nil:
			return err
		}
		invalid = 0

		switch c.name {
		case cmdQuit:
			s.println("Exiting game.")
			log.Info("player quit")
			return nil
		case cmdHelp:
			s.println(helpText)
			continue
		}

		err = executeCommand(game, c)
		if errors.Is(err, mines.ErrInvalidCoordinate) {
			s.println("Invalid input. Please enter valid row and column (e.g. '3 4'):")
			continue
		}
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"command": c.name,
			"row":     c.row,
			"col":     c.col,
		}).Debug("command executed")

		s.render(game, false)
	}

	if game.IsWin() {
		s.println("Congratulations! You won!")
	} else {
		s.println("Game over. You lose!")
		s.render(game, true)
	}
	log.WithField("outcome", game.Outcome().String()).Info("game finished")
	return nil
}
