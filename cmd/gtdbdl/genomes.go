package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/gtdbdl/internal/iocatalog"
	"github.com/gnames/gtdbdl/internal/iofetch"
	"github.com/gnames/gtdbdl/internal/iolink"
	"github.com/gnames/gtdbdl/pkg/catalog"
	"github.com/gnames/gtdbdl/pkg/fetch"
	"github.com/gnames/gtdbdl/pkg/link"
	"github.com/spf13/cobra"
)

var (
	flagTaxon  string
	flagFlat   string
	flagOutput string
	dryRun     bool
	flagReps   bool
)

func getGenomesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genomes",
		Short: "Download all genomes matching a taxon",
		Long: `Download every genome in the metadata catalog that matches a taxon
query and link it into a taxonomy-shaped directory tree.

The query is either a bare name matched against any single rank
("Bacillota"), or a semicolon-delimited lineage path anchored at the
domain rank ("d__Bacteria;p__Bacillota"). Matching compares whole rank
values, never substrings.

Genome files always land in <base-dir>/<release>/genomes/raw; the
taxonomy tree only links into it, so re-runs reuse earlier downloads.

Examples:
  gtdbdl genomes --gtdb r226 --taxon "Bacillota"
  gtdbdl genomes --gtdb r226 --taxon "d__Bacteria;p__Bacillota" -v
  gtdbdl genomes --gtdb r226 --taxon "Archaea" --dataset ar53 --flat species
  gtdbdl genomes --gtdb r226 --taxon "g__Bacillus" --reps --dry-run`,
		RunE: runGenomes,
	}

	cmd.Flags().StringVar(&flagTaxon, "taxon", "",
		"taxon to download genomes for (bare name or lineage path)")
	cmd.Flags().StringVar(&flagFlat, "flat", "",
		"flat symlink layout at the given rank (e.g. species, genus, s, g)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"output directory for the taxonomy symlink tree")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"show what would be downloaded without downloading")
	cmd.Flags().BoolVar(&flagReps, "reps", false,
		"mark species-cluster representative genomes in link names")

	return cmd
}

func runGenomes(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()
	cfg := getConfig()
	if err := requireRelease(); err != nil {
		return err
	}
	if flagTaxon == "" {
		return fmt.Errorf("--taxon is required")
	}
	cfg.Taxon = flagTaxon
	cfg.FlatRank = flagFlat
	cfg.OutputDir = flagOutput
	cfg.DryRun = dryRun
	cfg.FlagReps = flagReps

	transfer, downloader, err := iofetch.NewTransfer(verbose)
	if err != nil {
		return err
	}
	slog.Debug("Selected transfer strategy", "downloader", downloader)

	metadataPath, err := iofetch.EnsureMetadata(ctx, cfg, transfer)
	if err != nil {
		return err
	}

	cat, err := iocatalog.Load(metadataPath)
	if err != nil {
		return err
	}
	slog.Debug("Loaded metadata catalog",
		"path", metadataPath, "genomes", humanize.Comma(int64(cat.Len())))

	matched := cat.GenomesByTaxon(cfg.Taxon)
	if len(matched) == 0 {
		return fmt.Errorf("no genomes found for taxon: %s", cfg.Taxon)
	}
	fmt.Printf("Found %s genomes for taxon: %s\n",
		humanize.Comma(int64(len(matched))), cfg.Taxon)

	if cfg.FlagReps {
		warnDuplicateReps(cat, matched)
	}

	planner := fetch.NewPlanner(cat)
	plan := planner.Plan(matched, cfg.GenomesDir())
	for _, f := range plan.Failures {
		slog.Warn("Skipping genome",
			"accession", f.Accession, "reason", f.Err)
	}

	if cfg.DryRun {
		printDryRun(plan)
		return nil
	}

	if err := gnsys.MakeDir(cfg.GenomesDir()); err != nil {
		return err
	}
	if err := gnsys.MakeDir(cfg.TaxonomyDir()); err != nil {
		return err
	}

	res := planner.Execute(ctx, plan, transfer, cfg.ScratchDir())
	linkGenomes(cfg.TaxonomyDir(), cfg.FlatRank, cfg.FlagReps, res.Done)

	fmt.Printf("\n✓ Downloaded: %s\n",
		humanize.Comma(int64(len(res.Done))))
	fmt.Printf("✗ Failed: %s\n", humanize.Comma(int64(res.Failed)))
	fmt.Printf("Genomes stored in: %s\n", cfg.GenomesDir())
	fmt.Printf("Taxonomy structure in: %s\n", cfg.TaxonomyDir())
	slog.Debug("Run finished",
		"duration", gnfmt.TimeString(time.Since(start).Seconds()))

	if res.Failed > 0 {
		return fmt.Errorf("%d genomes failed", res.Failed)
	}
	return nil
}

// warnDuplicateReps surfaces clusters in which the source metadata flags
// more than one genome as the representative. Inconsistent metadata, not
// an error in this tool.
func warnDuplicateReps(cat *catalog.Catalog, matched []string) {
	for cluster, members := range cat.DuplicateRepClusters(matched) {
		gn.Warn(fmt.Sprintf(
			"Cluster %s has %d genomes flagged representative",
			cluster, len(members)))
		slog.Warn("Multiple representatives in species cluster",
			"cluster", cluster, "genomes", members)
	}
}

func printDryRun(plan *fetch.Plan) {
	toFetch := plan.ToFetch()
	fmt.Printf("\n[DRY RUN] Would download %s genomes (%s already present):\n",
		humanize.Comma(int64(len(toFetch))),
		humanize.Comma(int64(len(plan.Entries)-len(toFetch))))
	for _, j := range toFetch {
		fmt.Printf("  %s\n", j.URL)
	}
}

// linkGenomes mirrors downloaded files into the taxonomy tree. Link
// failures are warnings: the genome is already safely on disk.
func linkGenomes(
	taxonomyDir, flatRank string,
	flagReps bool,
	entries []fetch.Entry,
) {
	linker := iolink.New()
	for _, e := range entries {
		dir := link.TargetDir(taxonomyDir, e.Taxonomy, flatRank)
		name := link.Name(e.Filename(), flagReps && e.IsRep)
		if err := linker.Link(e.Path, filepath.Join(dir, name)); err != nil {
			slog.Warn("Could not create symlink",
				"accession", e.Accession, "error", err)
		}
	}
}
