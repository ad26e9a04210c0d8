// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder turns an image file into a decoded image. FileDecoder is the
// production implementation; tests inject fakes.
type Decoder interface {
	// Decode reads the image at path.
	Decode(path string) (image.Image, error)
}

// FileDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP files from disk.
// The format is sniffed from the file contents, not the extension.
type FileDecoder struct{}

// Decode opens path and decodes it with the registered image formats.
func (FileDecoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decoding %s image: empty bounds %v", format, b)
	}
	return img, nil
}
