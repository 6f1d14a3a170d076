package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	cmdUncover = "uncover"
	cmdFlag    = "flag"
	cmdChord   = "chord"
	cmdHelp    = "help"
	cmdQuit    = "quit"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	cmdUncover: 2,
	cmdFlag:    2,
	cmdChord:   2,
	cmdHelp:    0,
	cmdQuit:    0,
}

var commandAliases = map[string]string{
	"u": cmdUncover,
	"o": cmdUncover,
	"f": cmdFlag,
	"c": cmdChord,
	"h": cmdHelp,
	"?": cmdHelp,
	"q": cmdQuit,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
	ErrBadCoordinates = errors.New("row and column must be integers")
)

type command struct {
	name     string
	row, col int // zero-based
}

// parseRowCol converts one-based user input into zero-based coordinates.
// Range checks are left to the game.
func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		return 0, 0, fmt.Errorf("first argument must be an int: %w", ErrBadCoordinates)
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		return 0, 0, fmt.Errorf("second argument must be an int: %w", ErrBadCoordinates)
	}
	return row - 1, col - 1, nil
}

func parseCommand(line string) (c command, err error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return c, ErrUnknownCommand
	}
	name := parts[0]
	if full, ok := commandAliases[name]; ok {
		name = full
	}
	nargs, ok := commandNargs[name]
	if !ok {
		return c, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return c, fmt.Errorf("%w: %s takes %d", ErrBadArgs, name, nargs)
	}
	c.name = name
	if nargs == 2 {
		c.row, c.col, err = parseRowCol(parts[1:])
	}
	return c, err
}

func executeCommand(g *mines.Game, c command) error {
	switch c.name {
	case cmdUncover:
		return g.Uncover(c.row, c.col)
	case cmdFlag:
		return g.Flag(c.row, c.col)
	case cmdChord:
		return g.Chord(c.row, c.col)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, c.name)
}
