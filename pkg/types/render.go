// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one image.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Render describes one image rendered to Braille text.
type Render struct {
	// ID is the catalog row identifier. Zero until the render is recorded.
	ID int64 `json:"id" yaml:"id"`

	// SourcePath is the input image path as given on the command line.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the written text file (SourcePath + ".txt").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// SourceWidth and SourceHeight are the decoded image dimensions in pixels.
	SourceWidth  int `json:"source_width" yaml:"source_width"`
	SourceHeight int `json:"source_height" yaml:"source_height"`

	// Cols and Rows are the character grid dimensions.
	Cols int `json:"cols" yaml:"cols"`
	Rows int `json:"rows" yaml:"rows"`

	// Status is ConversionDone for a written file and ConversionFailed for a
	// skipped one.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the decode failure of a skipped file.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Digest is the hex SHA-256 of the written text.
	Digest string `json:"digest" yaml:"digest"`

	// RenderedAt is the UTC time the output file was written or the file was skipped.
	RenderedAt time.Time `json:"rendered_at" yaml:"rendered_at"`
}
