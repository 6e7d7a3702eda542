package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/gtdbdl/internal/ioconfig"
	"github.com/gnames/gtdbdl/pkg/config"
	"github.com/gnames/gtdbdl/pkg/gtdb"
	"github.com/gnames/gtdbdl/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config

	// persistent flag overrides
	flagRelease string
	flagDataset string
	flagMirror  string
	flagBaseDir string
	verbose     bool
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gtdbdl",
		Short: "gtdbdl downloads GTDB genomes by taxonomy",
		Long: `gtdbdl resolves genomes in a GTDB metadata catalog to NCBI download
URLs, fetches them, and mirrors the matched subset into a taxonomy-shaped
directory tree of symlinks.

Downloads go through aria2c as one batch job when aria2c is installed,
falling back to sequential wget calls otherwise.

Configuration precedence (highest to lowest):
  1. CLI flags (--mirror, --dataset, etc.)
  2. Environment variables (GTDBDL_*)
  3. Config file (~/.config/gtdbdl/config.yaml)
  4. Built-in defaults

Examples:
  # Fetch the r226 bacterial metadata catalog
  gtdbdl metadata --gtdb r226

  # Download all Bacillota genomes
  gtdbdl genomes --gtdb r226 --taxon "Bacillota"

  # Download one lineage, flat layout by species, representative marking
  gtdbdl genomes --gtdb r226 --taxon "d__Bacteria;p__Bacillota" \
    --flat species --reps`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("cannot check config file: %w", err)
				}
				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						slog.Warn("Could not generate config file",
							"error", err)
					} else {
						fmt.Printf("Generated default config at: %s\n",
							generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("cannot load configuration: %w", err)
			}
			cfg = result
			applyFlags(cmd)

			if verbose {
				cfg.Log.Level = "debug"
			}
			slog.SetDefault(logger.New(cfg.Log))

			return cfg.Validate()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/gtdbdl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRelease, "gtdb", "",
		"GTDB release to use ("+strings.Join(gtdb.ReleaseTags(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "",
		"dataset type: bac120 or ar53 (default: bac120)")
	rootCmd.PersistentFlags().StringVar(&flagMirror, "mirror", "",
		"mirror to download from: europe, asia-pacific1 or asia-pacific2")
	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "base-dir", "",
		"base directory for GTDB data (also GTDBDL_BASE_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gtdbdl")

	rootCmd.AddCommand(getMetadataCmd())
	rootCmd.AddCommand(getGenomesCmd())

	return rootCmd
}

// applyFlags copies explicitly set persistent flags over the loaded
// configuration; flags always win.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	cfg.Release = flagRelease
	if flags.Changed("dataset") {
		cfg.Dataset = flagDataset
	}
	if flags.Changed("mirror") {
		cfg.Mirror = flagMirror
	}
	if flags.Changed("base-dir") {
		cfg.BaseDir = flagBaseDir
	}
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *config.Config {
	return cfg
}

// requireRelease rejects runs without a --gtdb release.
func requireRelease() error {
	if cfg.Release == "" {
		return fmt.Errorf("--gtdb release is required (one of: %s)",
			strings.Join(gtdb.ReleaseTags(), ", "))
	}
	return nil
}
