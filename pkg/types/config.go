// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CatalogConfig holds settings for the optional render history database.
type CatalogConfig struct {
	// Path is the SQLite database file. An empty path disables the catalog.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults is the default number of records returned by a listing (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Enabled reports whether a catalog database is configured.
func (c CatalogConfig) Enabled() bool {
	return c.Path != ""
}

// ConversionConfig holds settings for a batch conversion run.
type ConversionConfig struct {
	// Width is the target character width of every rendered file.
	Width int `json:"width" yaml:"width" mapstructure:"width"`
}

// Config groups all settings read from image2txt.yaml, the environment and flags.
type Config struct {
	// Quiet suppresses per-file progress lines. Diagnostics are still printed.
	Quiet bool `json:"quiet" yaml:"quiet" mapstructure:"quiet"`

	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}
