package render

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText prints cells as rows of glyphs, width cells per line. Values past
// the end of glyphs print as '?'.
func WriteText(w io.Writer, cells []uint8, width int, glyphs []byte) error {
	if width <= 0 {
		return fmt.Errorf("render: invalid width %d", width)
	}
	if len(cells)%width != 0 {
		return fmt.Errorf("render: %d cells do not fill rows of %d", len(cells), width)
	}
	bw := bufio.NewWriter(w)
	for i, c := range cells {
		g := byte('?')
		if int(c) < len(glyphs) {
			g = glyphs[c]
		}
		bw.WriteByte(g)
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
