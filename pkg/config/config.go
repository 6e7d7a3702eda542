// Package config provides configuration for gtdbdl.
//
// The core receives an explicit Config built by the CLI layer; nothing in
// the core reads flags or environment variables itself.
//
// Precedence (highest to lowest): CLI flags > env vars (GTDBDL_*) >
// config.yaml > defaults. internal/ioconfig implements the loading.
//
// Persistent fields (config.yaml and env vars): base_dir, mirror, dataset,
// log.level, log.format. Everything else is per-invocation and comes from
// CLI flags only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnames/gtdbdl/pkg/gtdb"
)

// Config is the complete gtdbdl configuration.
type Config struct {
	// BaseDir is the root directory for metadata files and downloaded
	// genomes.
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"`

	// Mirror is the GTDB mirror metadata is fetched from.
	Mirror string `mapstructure:"mirror" yaml:"mirror"`

	// Dataset selects the metadata dataset ("bac120" or "ar53").
	Dataset string `mapstructure:"dataset" yaml:"dataset"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Release is the GTDB release tag (e.g. "r226"). CLI flag only.
	Release string `mapstructure:"-" yaml:"-"`

	// Taxon is the taxon query to download genomes for. CLI flag only.
	Taxon string `mapstructure:"-" yaml:"-"`

	// FlatRank, when set, flattens the symlink layout to a single folder
	// per value of that rank. CLI flag only.
	FlatRank string `mapstructure:"-" yaml:"-"`

	// OutputDir overrides the default location of the taxonomy symlink
	// tree. CLI flag only.
	OutputDir string `mapstructure:"-" yaml:"-"`

	// DryRun reports what would be downloaded without downloading.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// FlagReps enables species-cluster representative marking of link
	// names.
	FlagReps bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides settings for application logs.
type LogConfig struct {
	// Level is the minimum level to log: debug, info, warn or error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// Defaults returns a Config with built-in defaults. A default Config is
// always valid.
func Defaults() *Config {
	baseDir := ".gtdbdl"
	if home, err := os.UserHomeDir(); err == nil {
		baseDir = filepath.Join(home, ".gtdbdl")
	}
	return &Config{
		BaseDir: baseDir,
		Mirror:  gtdb.DefaultMirror,
		Dataset: gtdb.DefaultDataset,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// MergeWithDefaults fills empty persistent fields from Defaults.
func (c *Config) MergeWithDefaults() {
	def := Defaults()
	if c.BaseDir == "" {
		c.BaseDir = def.BaseDir
	}
	if c.Mirror == "" {
		c.Mirror = def.Mirror
	}
	if c.Dataset == "" {
		c.Dataset = def.Dataset
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// Validate checks that the persistent fields name known GTDB entities.
func (c *Config) Validate() error {
	if _, ok := gtdb.Mirrors[c.Mirror]; !ok {
		return fmt.Errorf("unknown mirror: %s", c.Mirror)
	}
	if _, ok := gtdb.Datasets[c.Dataset]; !ok {
		return fmt.Errorf("unknown dataset: %s", c.Dataset)
	}
	if c.Release != "" {
		if _, ok := gtdb.Releases[c.Release]; !ok {
			return fmt.Errorf("unknown release: %s", c.Release)
		}
	}
	return nil
}

// ReleaseDir is where one release's metadata file lives.
func (c *Config) ReleaseDir() string {
	return filepath.Join(c.BaseDir, c.Release)
}

// GenomesDir is where downloaded genome files live. Downloads always land
// here; the taxonomy tree only links into it.
func (c *Config) GenomesDir() string {
	return filepath.Join(c.BaseDir, c.Release, "genomes", "raw")
}

// TaxonomyDir is the root of the taxonomy symlink tree: OutputDir when
// given, otherwise a sibling of the raw genomes directory.
func (c *Config) TaxonomyDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(c.BaseDir, c.Release, "genomes", "taxonomy")
}

// ScratchDir is writable space for transfer bookkeeping.
func (c *Config) ScratchDir() string {
	return filepath.Join(c.BaseDir, c.Release, "scratch")
}
