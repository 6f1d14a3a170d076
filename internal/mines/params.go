package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is a board configuration. Presets and custom values go through
// the same [Difficulty.Validate] check.
type Difficulty struct {
	Name  string
	Size  int
	Bombs int
}

var (
	Easy   = Difficulty{Name: "easy", Size: 3, Bombs: 1}
	Medium = Difficulty{Name: "medium", Size: 10, Bombs: 15}
	Hard   = Difficulty{Name: "hard", Size: 12, Bombs: 20}
)

// Presets in menu order.
var Presets = []Difficulty{Easy, Medium, Hard}

func Custom(size, bombs int) Difficulty {
	return Difficulty{Name: "custom", Size: size, Bombs: bombs}
}

// MaxSize bounds the board side so that Size² cells always fit in memory.
const MaxSize = 1024

func (d Difficulty) Unpack() (size int, bombs int) {
	return d.Size, d.Bombs
}

func (d Difficulty) Validate() error {
	if d.Size <= 0 || d.Size > MaxSize || d.Bombs < 0 || d.Bombs >= d.Size*d.Size {
		return ConfigurationError{Size: d.Size, Bombs: d.Bombs}
	}
	return nil
}

func (d Difficulty) Cells() int {
	return d.Size * d.Size
}

func (d Difficulty) SafeCells() int {
	return d.Cells() - d.Bombs
}

// String returns the preset name, or "size:bombs" for anything else. The
// result is accepted by [ParseDifficulty].
func (d Difficulty) String() string {
	for _, p := range Presets {
		if d == p {
			return p.Name
		}
	}
	return fmt.Sprintf("%d:%d", d.Size, d.Bombs)
}

// ParseDifficulty accepts a preset name, a one-based menu number or a
// "size:bombs" pair. The result is validated.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for i, p := range Presets {
		if strings.EqualFold(s, p.Name) || s == strconv.Itoa(i+1) {
			return p, nil
		}
	}

	var size, bombs int
	n, err := fmt.Sscanf(strings.ReplaceAll(s, ":", " "), "%d %d", &size, &bombs)
	if n != 2 || err != nil {
		return Difficulty{}, fmt.Errorf(
			`invalid difficulty (s = "%s", n = %d, err = %v): %w`,
			s, n, err, ErrInvalidConfiguration,
		)
	}

	d := Custom(size, bombs)
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}
