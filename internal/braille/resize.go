// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braille

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Grayscale converts img to 8-bit luma and resamples it to exactly
// width x height with a Catmull-Rom filter. The result always has its
// origin at (0, 0). Nothing is cropped or letterboxed: the aspect ratio
// follows the requested dimensions.
func Grayscale(img image.Image, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	src := toGray(img)
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Rec. 709 luma weights, scaled by lumaDiv.
const (
	lumaR   = 2126
	lumaG   = 7152
	lumaB   = 722
	lumaDiv = 10000
)

// toGray returns a luma copy of img anchored at the origin. Luma is taken
// from the stored, non-premultiplied color with alpha ignored, so a
// transparent pixel keeps the brightness of its color.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.Gray); ok {
		draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
		return gray
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.SetGray(x-b.Min.X, y-b.Min.Y, Luma(img.At(x, y)))
		}
	}
	return gray
}

// Luma converts c to 8-bit Rec. 709 luma, truncating the weighted sum.
func Luma(c color.Color) color.Gray {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	l := (lumaR*uint32(n.R) + lumaG*uint32(n.G) + lumaB*uint32(n.B)) / lumaDiv
	return color.Gray{Y: uint8(l)}
}
