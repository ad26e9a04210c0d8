// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the image2txt CLI.
//
//	image2txt WIDTH file ...
//
// renders every image as Unicode Braille text WIDTH characters wide and
// writes it to file.txt beside the source.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/image2txt/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts images; subcommands inspect the render catalog.
var rootCmd = &cobra.Command{
	Use:   "image2txt WIDTH file ...",
	Short: "Render images as Unicode Braille text",
	Long: `image2txt renders raster images (PNG, JPEG, GIF, BMP, TIFF, WebP) as
Unicode Braille art. Each character covers a 2x4 block of pixels, so an image
rendered WIDTH characters wide is resampled to WIDTH*2 pixels across with the
height scaled to keep its aspect ratio.

For every input file P the text is written to P.txt, replacing any existing
file. Files that cannot be decoded are reported and skipped.`,
	Args: cobra.ArbitraryArgs,
	RunE: runConvert,
}

// configFileUsed is the config file read by initConfig, empty when none was found.
var configFileUsed string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./image2txt.yaml or ~/.config/image2txt/image2txt.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "SQLite database recording every render (empty disables)")
	rootCmd.PersistentFlags().Int("max-results", 20, "default number of records listed from the catalog")
	rootCmd.Flags().BoolP("quiet", "q", false, "suppress per-file progress lines")

	bindConfig()
}

// bindConfig ties flags and defaults to their viper keys.
func bindConfig() {
	_ = viper.BindPFlag("catalog.path", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("catalog.max_results", rootCmd.PersistentFlags().Lookup("max-results"))
	_ = viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))

	viper.SetDefault("catalog.path", "")
	viper.SetDefault("catalog.max_results", 20)
	viper.SetDefault("quiet", false)
}

// initConfig loads the config file and environment. It prints nothing:
// a bare invocation must stay silent, so commands call reportConfig once
// they have work to do.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("image2txt")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "image2txt"))
		}
	}

	viper.SetEnvPrefix("IMAGE2TXT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configFileUsed = ""
	if err := viper.ReadInConfig(); err == nil {
		configFileUsed = viper.ConfigFileUsed()
	}
}

// reportConfig names the config file in use, if any, on w.
func reportConfig(w io.Writer) {
	if configFileUsed != "" {
		fmt.Fprintln(w, "Using config file:", configFileUsed)
	}
}

// loadConfig decodes the merged flag, environment and file settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
