// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives Braille rendering over a list of image files,
// writing each result to a ".txt" file beside its source.
package convert

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/image2txt/internal/braille"
	"github.com/pdiddy/image2txt/pkg/types"
)

// outputExt is appended to the source path to name the text file.
const outputExt = ".txt"

// Recorder receives a record for every file written. The catalog store
// implements it.
type Recorder interface {
	Record(ctx context.Context, r types.Render) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of images processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any image was skipped.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the text file written for the image at path.
func OutputPath(path string) string {
	return path + outputExt
}

// ValidateWidth checks the character width before any file is touched.
func ValidateWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: got %d", braille.ErrInvalidWidth, width)
	}
	return nil
}

// ConvertFile renders the image at path and writes the text to
// OutputPath(path), replacing any existing file. Decode failures are
// returned as *DecodeError, write failures as *WriteError.
func ConvertFile(dec Decoder, path string, width int) (types.Render, error) {
	img, err := dec.Decode(path)
	if err != nil {
		return types.Render{}, &DecodeError{Path: path, Err: err}
	}

	grid, err := braille.RenderGrid(img, width)
	if err != nil {
		if errors.Is(err, braille.ErrEmptyImage) {
			return types.Render{}, &DecodeError{Path: path, Err: err}
		}
		return types.Render{}, fmt.Errorf("rendering %s: %w", path, err)
	}

	text := grid.String()
	out := OutputPath(path)
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return types.Render{}, &WriteError{Path: out, Err: err}
	}

	sum := sha256.Sum256([]byte(text))
	b := img.Bounds()
	size := grid.Size()
	return types.Render{
		SourcePath:   path,
		OutputPath:   out,
		SourceWidth:  b.Dx(),
		SourceHeight: b.Dy(),
		Cols:         size.Cols,
		Rows:         size.Rows,
		Status:       types.ConversionDone,
		Digest:       hex.EncodeToString(sum[:]),
		RenderedAt:   time.Now().UTC(),
	}, nil
}

// ConvertBatch converts paths in order, one file at a time. Progress lines
// go to w and diagnostics to errW. Files that cannot be decoded are reported
// and skipped. A write failure stops the batch and is returned together with
// the counts so far. rec may be nil; it receives every converted and every
// skipped file, and its failures are reported as warnings only.
func ConvertBatch(ctx context.Context, dec Decoder, paths []string, width int, rec Recorder, w, errW io.Writer) (BatchResult, error) {
	var result BatchResult
	if err := ValidateWidth(width); err != nil {
		return result, err
	}

	record := func(r types.Render) {
		if rec == nil {
			return
		}
		if err := rec.Record(ctx, r); err != nil {
			fmt.Fprintf(errW, "warning: recording %s in catalog: %v\n", r.SourcePath, err)
		}
	}

	for _, p := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r, err := ConvertFile(dec, p, width)
		if err != nil {
			var decErr *DecodeError
			if errors.As(err, &decErr) {
				fmt.Fprintf(errW, "failed:  %v\n", decErr)
				result.Failed++
				record(skipped(p, decErr))
				continue
			}
			return result, err
		}

		fmt.Fprintf(w, "converted: %s -> %s (%dx%d)\n", r.SourcePath, r.OutputPath, r.Cols, r.Rows)
		result.Converted++
		record(r)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}

// skipped builds the record of a file that could not be decoded.
func skipped(path string, err *DecodeError) types.Render {
	return types.Render{
		SourcePath: path,
		OutputPath: OutputPath(path),
		Status:     types.ConversionFailed,
		Error:      err.Err.Error(),
		RenderedAt: time.Now().UTC(),
	}
}
