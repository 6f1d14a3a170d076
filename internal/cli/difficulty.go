package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

type customDifficulty struct {
	Size  int `schema:"size,required"`
	Bombs int `schema:"bombs,required"`
}

func decodeCustomDifficulty(src map[string][]string) (customDifficulty, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto customDifficulty
	err := dec.Decode(&dto, src)
	return dto, err
}

// ParseDifficulty accepts everything [mines.ParseDifficulty] does, plus
// key-value boards such as "size=16 bombs=40" or "size=16&bombs=40".
func ParseDifficulty(s string) (mines.Difficulty, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "=") {
		return mines.ParseDifficulty(s)
	}

	query, err := url.ParseQuery(strings.Join(strings.Fields(s), "&"))
	if err != nil {
		return mines.Difficulty{}, fmt.Errorf("%w: %w", mines.ErrInvalidConfiguration, err)
	}
	dto, err := decodeCustomDifficulty(query)
	if err != nil {
		return mines.Difficulty{}, fmt.Errorf("%w: %w", mines.ErrInvalidConfiguration, err)
	}

	d := mines.Custom(dto.Size, dto.Bombs)
	if err := d.Validate(); err != nil {
		return mines.Difficulty{}, err
	}
	return d, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func describe(d mines.Difficulty) string {
	return fmt.Sprintf("%dx%d, %s", d.Size, d.Size, plural(d.Bombs, "bomb"))
}

func difficultyMenu() string {
	var b strings.Builder
	b.WriteString("Please select a difficulty level:\n")
	for i, d := range mines.Presets {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, strings.ToUpper(d.Name[:1])+d.Name[1:], describe(d))
	}
	b.WriteString("Or describe a custom board, e.g. 'size=16 bombs=40'.\n")
	return b.String()
}
