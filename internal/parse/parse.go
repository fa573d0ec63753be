// Package parse is the textual grid parser: an external collaborator
// per spec.md §1/§6 that turns a plain-text puzzle description into a
// populated *grid.Grid. It depends on the core; the core never depends
// on it.
//
// Format: the first non-blank, non-comment line's character count
// (whitespace stripped, '#' starts a line comment) fixes the grid size
// N; each subsequent non-blank line supplies one more row of N
// characters, each either the empty sentinel '_' or a color character
// valid for that size. Grounded on the original C core's file_parser.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sudokucore/internal/grid"
)

// Grid reads a textual puzzle description from r and returns a
// populated grid, or an error describing the first malformed line.
func Grid(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	var g *grid.Grid
	row := 0

	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		chars := stripWhitespace(line)
		if len(chars) == 0 {
			continue
		}

		if g == nil {
			size := len(chars)
			if !grid.CheckSize(size) {
				return nil, fmt.Errorf("line %d: invalid grid size %d (allowed: 1,4,9,16,25,36,49,64)", lineNo, size)
			}
			var ok bool
			g, ok = grid.Allocate(size)
			if !ok {
				return nil, fmt.Errorf("line %d: could not allocate a grid of size %d", lineNo, size)
			}
		} else if len(chars) != g.Size() {
			return nil, fmt.Errorf("line %d: wrong number of columns (got %d, want %d)", lineNo, len(chars), g.Size())
		}

		if row >= g.Size() {
			return nil, fmt.Errorf("line %d: grid has extra rows beyond size %d", lineNo, g.Size())
		}

		for col := 0; col < len(chars); col++ {
			ch := chars[col]
			if !g.CheckCharacter(ch) {
				return nil, fmt.Errorf("line %d: invalid character %q at column %d", lineNo, ch, col)
			}
			g.SetCell(row, col, ch)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("empty grid input")
	}
	if row < g.Size() {
		return nil, fmt.Errorf("grid has %d missing row(s)", g.Size()-row)
	}
	return g, nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func stripWhitespace(line string) []byte {
	out := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return out
}
