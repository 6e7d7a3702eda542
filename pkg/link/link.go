// Package link decides where in the taxonomy mirror a downloaded genome is
// linked and under what name. Creating the links on disk is the job of
// internal/iolink; everything here is pure.
package link

import (
	"path/filepath"
	"strings"

	"github.com/gnames/gtdbdl/pkg/taxonomy"
)

// repMarker is inserted into link names of species-cluster representative
// genomes.
const repMarker = ".speciesrep"

// genomicSuffix is the compressed-archive suffix of NCBI genomic files.
const genomicSuffix = ".fna.gz"

// Linker creates one filesystem link. Implemented by internal/iolink;
// replaced by fakes in tests.
type Linker interface {
	// Link makes linkPath point at target, creating parent directories
	// as needed. Existing links are left in place.
	Link(target, linkPath string) error
}

// TargetDir returns the directory under root where a genome with the given
// taxonomy is linked: one folder per rank, names sanitized.
//
// With flatRank set, the layout is flat instead: a single folder named
// after the genome's component at that rank, keeping the rank prefix
// (e.g. "s__Bacillus_subtilis"). A genome lacking that rank falls back to
// the full hierarchical path.
func TargetDir(root, taxonomyStr, flatRank string) string {
	if flatRank != "" {
		if comp, ok := taxonomy.ComponentAtRank(taxonomyStr, flatRank); ok {
			return filepath.Join(root, taxonomy.SanitizeName(comp))
		}
	}
	parts := taxonomy.PathParts(taxonomyStr)
	if len(parts) == 0 {
		return root
	}
	return filepath.Join(append([]string{root}, parts...)...)
}

// Name returns the link name for a downloaded file: the remote filename
// itself, or with the representative marker inserted before the
// compressed-archive suffix when the genome is a species-cluster
// representative.
func Name(filename string, isRep bool) string {
	if !isRep {
		return filename
	}
	if strings.HasSuffix(filename, genomicSuffix) {
		base := strings.TrimSuffix(filename, genomicSuffix)
		return base + repMarker + genomicSuffix
	}
	return filename + repMarker + genomicSuffix
}
