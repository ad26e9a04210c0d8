// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braille

import "image"

// RenderGrid runs the full pipeline: size the grid from charWidth, convert
// img to luma resampled to the grid's pixel size, then pack every 2x4 block
// into a glyph. Cells are independent of each other.
func RenderGrid(img image.Image, charWidth int) (*Grid, error) {
	b := img.Bounds()
	size, err := Dimensions(b.Dx(), b.Dy(), charWidth)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(size)
	if size.Empty() {
		return grid, nil
	}

	w, h := size.Pixels()
	gray := Grayscale(img, w, h)

	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			grid.Set(col, row, Glyph(Flag(gray, col, row)))
		}
	}
	return grid, nil
}

// Render returns the Braille text for img at charWidth characters per line.
// Rendering the same image twice yields identical text.
func Render(img image.Image, charWidth int) (string, error) {
	grid, err := RenderGrid(img, charWidth)
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}
