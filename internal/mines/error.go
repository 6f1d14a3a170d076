package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
)

type ConfigurationError struct {
	Size, Bombs int
}

// [ConfigurationError] implements [error]
func (e ConfigurationError) Error() string {
	switch {
	case e.Size <= 0:
		return fmt.Sprintf("cannot create a board of size %d", e.Size)
	case e.Size > MaxSize:
		return fmt.Sprintf("board size %d exceeds the maximum of %d", e.Size, MaxSize)
	case e.Bombs < 0:
		return fmt.Sprintf("cannot place a negative amount of bombs: %d", e.Bombs)
	case e.Bombs >= e.Size*e.Size:
		return fmt.Sprintf(
			"not enough room for %d bombs on a %dx%d board (at most %d)",
			e.Bombs, e.Size, e.Size, e.Size*e.Size-1,
		)
	default:
		return "cannot create board: unknown error"
	}
}

func (e ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

type CoordinateError struct {
	Row, Col, Size int
}

// [CoordinateError] implements [error]
func (e CoordinateError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside of the %dx%d board", e.Row, e.Col, e.Size, e.Size,
	)
}

func (e CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}
