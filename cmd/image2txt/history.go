// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/image2txt/internal/catalog"
	"github.com/pdiddy/image2txt/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List renders recorded in the catalog",
	Long: `History reads the render catalog configured with --catalog (or
catalog.path in image2txt.yaml) and prints the most recent renders, newest
first. Use --format yaml or json to export the records.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("source", "", "only show renders of this source path")
	historyCmd.Flags().String("status", "", "only show renders with this status: converted or failed")
	historyCmd.Flags().Int("limit", 0, "maximum records (0 = catalog.max_results)")
	historyCmd.Flags().String("format", "text", "output format: text, yaml or json")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	reportConfig(cmd.ErrOrStderr())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Catalog.Enabled() {
		return fmt.Errorf("no catalog configured: pass --catalog or set catalog.path")
	}

	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")
	status, _ := cmd.Flags().GetString("status")

	switch types.ConversionStatus(status) {
	case "", types.ConversionDone, types.ConversionFailed:
	default:
		return fmt.Errorf("unsupported status %q: use converted or failed", status)
	}

	store, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := catalog.QueryOptions{
		Source: source,
		Status: types.ConversionStatus(status),
		Limit:  limit,
	}
	return writeHistory(cmd.Context(), store, opts, format, cmd.OutOrStdout())
}

func writeHistory(ctx context.Context, store *catalog.Store, opts catalog.QueryOptions, format string, w io.Writer) error {
	switch format {
	case "yaml":
		return store.ExportYAML(ctx, w, opts)
	case "json":
		return store.ExportJSON(ctx, w, opts)
	case "text", "":
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or json", format)
	}

	renders, err := store.List(ctx, opts)
	if err != nil {
		return err
	}
	formatHistory(renders, w)
	return nil
}

func formatHistory(renders []types.Render, w io.Writer) {
	if len(renders) == 0 {
		fmt.Fprintln(w, "No renders recorded.")
		return
	}

	fmt.Fprintf(w, "%-20s  %-9s  %-9s  %-11s  %-12s  %s\n",
		"Rendered", "Status", "Grid", "Source px", "Digest", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range renders {
		grid := fmt.Sprintf("%dx%d", r.Cols, r.Rows)
		px := fmt.Sprintf("%dx%d", r.SourceWidth, r.SourceHeight)
		digest := r.Digest
		if len(digest) > 12 {
			digest = digest[:12]
		}
		source := r.SourcePath
		if r.Status == types.ConversionFailed {
			grid, px, digest = "-", "-", "-"
			source += " (" + r.Error + ")"
		}
		fmt.Fprintf(w, "%-20s  %-9s  %-9s  %-11s  %-12s  %s\n",
			r.RenderedAt.Local().Format(time.DateTime), r.Status, grid, px, digest, source)
	}

	fmt.Fprintf(w, "\n%d renders\n", len(renders))
}
