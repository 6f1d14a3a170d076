package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// Render draws the board with one-based row and column labels:
//
//	  | 1 2 3
//	--|-------
//	1 | . . F
//	2 | 1 2 .
func Render(w io.Writer, v mines.BoardView, reveal bool) error {
	var b strings.Builder
	n := v.Size()
	width := len(strconv.Itoa(n))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%*s | ", width, "")
	for col := range n {
		if col > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%*d", width, col+1)
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", width+1) + "|-" + strings.Repeat("-", n*(width+1)))
	b.WriteString("\n")

	for row, cells := range v.Rows() {
		fmt.Fprintf(&b, "%*d | ", width, row+1)
		for _, c := range cells {
			fmt.Fprintf(&b, "%*s ", width, c.State(reveal).String())
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
