// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braille

import "strings"

// Grid is a row-major matrix of Braille glyphs.
type Grid struct {
	size  Size
	cells []rune
}

// NewGrid returns a grid of the given size with every cell blank.
func NewGrid(size Size) *Grid {
	cells := make([]rune, size.Cols*size.Rows)
	for i := range cells {
		cells[i] = Base
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size {
	return g.size
}

// Set stores the glyph for cell (col, row).
func (g *Grid) Set(col, row int, r rune) {
	g.cells[row*g.size.Cols+col] = r
}

// At returns the glyph at cell (col, row).
func (g *Grid) At(col, row int) rune {
	return g.cells[row*g.size.Cols+col]
}

// Lines returns one string per row with no separators inside a row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.size.Rows)
	for row := range lines {
		start := row * g.size.Cols
		lines[row] = string(g.cells[start : start+g.size.Cols])
	}
	return lines
}

// String joins the rows with a single newline. There is no trailing newline,
// and a grid without rows renders as the empty string.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
