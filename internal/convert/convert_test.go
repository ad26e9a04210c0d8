// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/image2txt/internal/braille"
	"github.com/pdiddy/image2txt/pkg/types"
)

// fakeDecoder implements Decoder for testing. It returns a canned image or
// an error per path.
type fakeDecoder struct {
	images map[string]image.Image
	calls  []string
}

func (f *fakeDecoder) Decode(path string) (image.Image, error) {
	f.calls = append(f.calls, path)
	img, ok := f.images[path]
	if !ok {
		return nil, errors.New("unsupported format")
	}
	return img, nil
}

// fakeRecorder collects renders; err is returned from every Record call.
type fakeRecorder struct {
	renders []types.Render
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, r types.Render) error {
	f.renders = append(f.renders, r)
	return f.err
}

func whiteImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}

// writePNG encodes img as a PNG file in dir and returns its path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "photos/cat.png.txt", OutputPath("photos/cat.png"))
	assert.Equal(t, "noext.txt", OutputPath("noext"))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "white.png", whiteImage(4, 8))

	r, err := ConvertFile(FileDecoder{}, path, 2)
	require.NoError(t, err)

	data, err := os.ReadFile(path + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "⣿⣿\n⣿⣿", string(data))

	assert.Equal(t, path, r.SourcePath)
	assert.Equal(t, path+".txt", r.OutputPath)
	assert.Equal(t, 4, r.SourceWidth)
	assert.Equal(t, 8, r.SourceHeight)
	assert.Equal(t, 2, r.Cols)
	assert.Equal(t, 2, r.Rows)
	assert.Len(t, r.Digest, 64)
	assert.Equal(t, types.ConversionDone, r.Status)
	assert.False(t, r.RenderedAt.IsZero())
}

func TestConvertFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "white.png", whiteImage(2, 4))
	require.NoError(t, os.WriteFile(path+".txt", []byte("stale content that is longer"), 0o644))

	_, err := ConvertFile(FileDecoder{}, path, 1)
	require.NoError(t, err)

	data, err := os.ReadFile(path + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "⣿", string(data))
}

func TestConvertFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ConvertFile(FileDecoder{}, filepath.Join(dir, "nope.png"), 4)
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(dir, "notes.png")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
		_, err := ConvertFile(FileDecoder{}, path, 4)
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, path, decErr.Path)
	})

	t.Run("unwritable output", func(t *testing.T) {
		path := writePNG(t, dir, "blocked.png", whiteImage(4, 8))
		require.NoError(t, os.Mkdir(path+".txt", 0o755))
		_, err := ConvertFile(FileDecoder{}, path, 2)
		var writeErr *WriteError
		require.ErrorAs(t, err, &writeErr)
		assert.Equal(t, path+".txt", writeErr.Path)
		assert.Contains(t, err.Error(), path+".txt")
	})
}

func TestConvertFile_Formats(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 6, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
		}
	}
	path := writePNG(t, dir, "rgba.png", img)

	r, err := ConvertFile(FileDecoder{}, path, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Cols)
	assert.Equal(t, 3, r.Rows)
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	good1 := writePNG(t, dir, "a.png", whiteImage(4, 8))
	missing := filepath.Join(dir, "missing.png")
	good2 := writePNG(t, dir, "c.png", image.NewGray(image.Rect(0, 0, 4, 8)))

	rec := &fakeRecorder{}
	var progress, diag bytes.Buffer
	result, err := ConvertBatch(context.Background(), FileDecoder{}, []string{good1, missing, good2}, 2, rec, &progress, &diag)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Converted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())

	assert.FileExists(t, good1+".txt")
	assert.NoFileExists(t, missing+".txt")

	data, err := os.ReadFile(good2 + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "⠀⠀\n⠀⠀", string(data))

	assert.Contains(t, diag.String(), "failed:  "+missing)
	assert.NotContains(t, progress.String(), "failed:")
	assert.Contains(t, progress.String(), "converted: "+good2)
	assert.Contains(t, progress.String(), "Batch summary: 2 converted, 1 failed (total: 3)")

	require.Len(t, rec.renders, 3)
	assert.Equal(t, good1, rec.renders[0].SourcePath)
	assert.Equal(t, types.ConversionDone, rec.renders[0].Status)

	assert.Equal(t, missing, rec.renders[1].SourcePath)
	assert.Equal(t, types.ConversionFailed, rec.renders[1].Status)
	assert.Equal(t, missing+".txt", rec.renders[1].OutputPath)
	assert.Contains(t, rec.renders[1].Error, "opening image")
	assert.Empty(t, rec.renders[1].Digest)

	assert.Equal(t, good2, rec.renders[2].SourcePath)
	assert.Equal(t, types.ConversionDone, rec.renders[2].Status)
}

func TestConvertBatch_InvalidWidth(t *testing.T) {
	dec := &fakeDecoder{}
	var progress, diag bytes.Buffer
	_, err := ConvertBatch(context.Background(), dec, []string{"a.png"}, 0, nil, &progress, &diag)
	require.ErrorIs(t, err, braille.ErrInvalidWidth)
	assert.Empty(t, dec.calls, "no file should be opened")
	assert.Empty(t, progress.String())
	assert.Empty(t, diag.String())
}

func TestConvertBatch_WriteErrorAborts(t *testing.T) {
	dir := t.TempDir()
	first := writePNG(t, dir, "first.png", whiteImage(4, 8))
	second := writePNG(t, dir, "second.png", whiteImage(4, 8))
	require.NoError(t, os.Mkdir(first+".txt", 0o755))

	result, err := ConvertBatch(context.Background(), FileDecoder{}, []string{first, second}, 2, nil, io.Discard, io.Discard)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, first+".txt", writeErr.Path)
	assert.Equal(t, 0, result.Converted)
	assert.NoFileExists(t, second+".txt")
}

func TestConvertBatch_RecorderFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", whiteImage(4, 8))

	rec := &fakeRecorder{err: errors.New("database is locked")}
	var progress, diag bytes.Buffer
	result, err := ConvertBatch(context.Background(), FileDecoder{}, []string{path}, 2, rec, &progress, &diag)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted)
	assert.Contains(t, diag.String(), "warning: recording "+path)
}

func TestConvertBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dec := &fakeDecoder{}
	_, err := ConvertBatch(ctx, dec, []string{"a.png", "b.png"}, 2, nil, io.Discard, io.Discard)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dec.calls)
}

func TestConvertBatch_FakeDecoder(t *testing.T) {
	dir := t.TempDir()
	okPath := filepath.Join(dir, "ok.img")
	badPath := filepath.Join(dir, "bad.img")
	dec := &fakeDecoder{images: map[string]image.Image{okPath: whiteImage(2, 4)}}

	var diag bytes.Buffer
	result, err := ConvertBatch(context.Background(), dec, []string{badPath, okPath}, 1, nil, io.Discard, &diag)
	require.NoError(t, err)
	assert.Equal(t, []string{badPath, okPath}, dec.calls)
	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, strings.Contains(diag.String(), "unsupported format"))
}
