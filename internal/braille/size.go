// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braille

import "fmt"

// Size is the character grid produced for an image.
type Size struct {
	Cols int
	Rows int
}

// Pixels returns the resampled image dimensions backing the grid. They are
// always exact multiples of the cell size.
func (s Size) Pixels() (width, height int) {
	return s.Cols * CellWidth, s.Rows * CellHeight
}

// Empty reports whether the grid has no cells.
func (s Size) Empty() bool {
	return s.Cols == 0 || s.Rows == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// Dimensions derives the character grid for a width x height image rendered
// charWidth characters wide. The row count keeps the aspect ratio of the
// source once each cell is 2 pixels wide and 4 tall:
//
//	rows = floor(height * (charWidth*2 / width) / 4)
//
// The product is taken in floating point before truncating. Very wide images
// or small widths may yield zero rows, which is not an error.
func Dimensions(width, height, charWidth int) (Size, error) {
	if charWidth <= 0 {
		return Size{}, fmt.Errorf("%w: got %d", ErrInvalidWidth, charWidth)
	}
	if width <= 0 || height <= 0 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}

	scaled := float64(height) * (float64(charWidth*CellWidth) / float64(width))
	rows := int(scaled) / CellHeight
	return Size{Cols: charWidth, Rows: rows}, nil
}
