//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/term"
)

// Two panel rows share one terminal cell.
const (
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
)

// WriteTerminal draws the panel state with half-block characters. When fd is
// a terminal narrower than the panel, the picture is cut at its width.
func WriteTerminal(w io.Writer, fd int, s PanelState) error {
	width := Columns
	if term.IsTerminal(fd) {
		if tw, _, err := term.GetSize(fd); err == nil && tw > 0 && tw < width {
			width = tw
		}
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for row := 0; row < Pages*8; row += 2 {
		line.Reset()
		for col := 0; col < width; col++ {
			top, bottom := s.Lit(row, col), s.Lit(row+1, col)
			switch {
			case top && bottom:
				line.WriteRune(blockFull)
			case top:
				line.WriteRune(blockUpper)
			case bottom:
				line.WriteRune(blockLower)
			default:
				line.WriteByte(' ')
			}
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
