// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/image2txt/internal/catalog"
	"github.com/pdiddy/image2txt/internal/convert"
	"github.com/pdiddy/image2txt/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	// Fewer than WIDTH and one file: nothing to do, and nothing is printed.
	if len(args) < 2 {
		return nil
	}

	width, err := parseWidth(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	reportConfig(cmd.ErrOrStderr())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Conversion.Width = width

	return convertImages(cmd.Context(), args[1:], cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// parseWidth parses the WIDTH argument as a positive integer.
func parseWidth(arg string) (int, error) {
	width, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q: %w", arg, err)
	}
	if err := convert.ValidateWidth(width); err != nil {
		return 0, fmt.Errorf("invalid width %q: %w", arg, err)
	}
	return width, nil
}

// convertImages runs one batch with the catalog attached when configured.
// Progress goes to stdout unless quiet; diagnostics always go to stderr.
func convertImages(ctx context.Context, paths []string, cfg types.Config, stdout, stderr io.Writer) error {
	w := stdout
	if cfg.Quiet {
		w = io.Discard
	}

	var rec convert.Recorder
	if cfg.Catalog.Enabled() {
		store, err := catalog.Open(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()
		rec = store
	}

	_, err := convert.ConvertBatch(ctx, convert.FileDecoder{}, paths, cfg.Conversion.Width, rec, w, stderr)
	return err
}
