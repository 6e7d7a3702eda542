package main

import (
	"context"
	"fmt"

	"github.com/gnames/gtdbdl/internal/iofetch"
	"github.com/spf13/cobra"
)

func getMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Download a GTDB metadata catalog",
		Long: `Download the metadata catalog for one GTDB release and dataset
without downloading any genomes. An already downloaded catalog is reused.

Examples:
  gtdbdl metadata --gtdb r226
  gtdbdl metadata --gtdb r220 --dataset ar53 --mirror asia-pacific1`,
		RunE: runMetadata,
	}
	return cmd
}

func runMetadata(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()
	if err := requireRelease(); err != nil {
		return err
	}

	transfer, downloader, err := iofetch.NewTransfer(verbose)
	if err != nil {
		return err
	}

	fmt.Printf("Downloading metadata for %s (%s) from %s via %s...\n",
		cfg.Release, cfg.Dataset, cfg.Mirror, downloader)

	path, err := iofetch.EnsureMetadata(ctx, cfg, transfer)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Metadata catalog at: %s\n", path)
	return nil
}
