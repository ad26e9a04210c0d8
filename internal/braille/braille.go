// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package braille renders raster images as text made of Unicode Braille
// patterns. Each character cell covers a block of 2x4 pixels; a pixel
// brighter than Threshold raises the matching dot.
//
// The package is pure: it never touches the filesystem and keeps no state
// between calls.
package braille

import (
	"errors"
	"image"
)

const (
	// Base is the code point of the blank Braille pattern (U+2800).
	Base rune = 0x2800

	// Threshold is the luma cutoff. Intensities strictly above it set a dot.
	Threshold uint8 = 128

	// CellWidth and CellHeight are the pixel dimensions of one character cell.
	CellWidth  = 2
	CellHeight = 4
)

var (
	// ErrInvalidWidth is returned when the requested character width is not positive.
	ErrInvalidWidth = errors.New("character width must be a positive integer")

	// ErrEmptyImage is returned when the source image has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
)

// dotBits maps a pixel position inside a cell, indexed [row][col], to its
// bit in the pattern offset. Rows 0-2 follow the six-dot numbering; row 3
// holds the two extra dots of the eight-dot cell.
var dotBits = [CellHeight][CellWidth]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Glyph returns the Braille pattern for an 8-bit dot flag.
func Glyph(flag uint8) rune {
	return Base + rune(flag)
}

// Flag packs the 2x4 block of gray that backs cell (col, row) into a dot
// flag. The block starts at pixel (2*col, 4*row) relative to the image
// bounds; gray must cover the whole block.
func Flag(gray *image.Gray, col, row int) uint8 {
	b := gray.Bounds()
	x0 := b.Min.X + col*CellWidth
	y0 := b.Min.Y + row*CellHeight

	var flag uint8
	for dy := 0; dy < CellHeight; dy++ {
		for dx := 0; dx < CellWidth; dx++ {
			if gray.GrayAt(x0+dx, y0+dy).Y > Threshold {
				flag |= 1 << dotBits[dy][dx]
			}
		}
	}
	return flag
}
