package catalog_test

import (
	"testing"

	"github.com/gnames/gtdbdl/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repCatalog() *catalog.Catalog {
	recs := map[string]*catalog.Record{
		// Self-representative: pointer names itself without the source
		// prefix.
		"RS_GCF_000001.1": catalog.NewRecord("RS_GCF_000001.1",
			map[string]string{
				"gtdb_taxonomy":              "d__Bacteria",
				"gtdb_genome_representative": "GCF_000001.1",
			}),
		// Member of the cluster above, not its representative.
		"GB_GCA_000005.1": catalog.NewRecord("GB_GCA_000005.1",
			map[string]string{
				"gtdb_taxonomy":              "d__Bacteria",
				"gtdb_genome_representative": "RS_GCF_000001.1",
			}),
		// Explicit truthy marker wins even with a foreign pointer.
		"GB_GCA_000006.1": catalog.NewRecord("GB_GCA_000006.1",
			map[string]string{
				"gtdb_taxonomy":              "d__Bacteria",
				"gtdb_representative":        "t",
				"gtdb_genome_representative": "RS_GCF_000001.1",
			}),
		// Explicit falsy marker wins over a self pointer.
		"RS_GCF_000007.1": catalog.NewRecord("RS_GCF_000007.1",
			map[string]string{
				"gtdb_taxonomy":              "d__Bacteria",
				"gtdb_representative":        "f",
				"gtdb_genome_representative": "GCF_000007.1",
			}),
		// Fallback pointer column.
		"RS_GCF_000008.1": catalog.NewRecord("RS_GCF_000008.1",
			map[string]string{
				"gtdb_taxonomy":               "d__Bacteria",
				"gtdb_representative_genome":  "GCF_000008.1",
			}),
		// No pointer at all: a genome is its own representative.
		"GB_GCA_000009.1": catalog.NewRecord("GB_GCA_000009.1",
			map[string]string{
				"gtdb_taxonomy": "d__Bacteria",
			}),
	}
	return catalog.New(recs)
}

func TestClusterRepresentative(t *testing.T) {
	cat := repCatalog()

	get := func(accession string) *catalog.Record {
		rec, ok := cat.Get(accession)
		require.True(t, ok)
		return rec
	}

	assert.Equal(t, "GCF_000001.1",
		cat.ClusterRepresentative(get("RS_GCF_000001.1")))
	// Pointer values are normalized too.
	assert.Equal(t, "GCF_000001.1",
		cat.ClusterRepresentative(get("GB_GCA_000005.1")))
	// Fallback pointer column.
	assert.Equal(t, "GCF_000008.1",
		cat.ClusterRepresentative(get("RS_GCF_000008.1")))
	// No pointer: own normalized accession.
	assert.Equal(t, "GCA_000009.1",
		cat.ClusterRepresentative(get("GB_GCA_000009.1")))
}

func TestIsRepresentative(t *testing.T) {
	cat := repCatalog()

	tests := []struct {
		accession string
		expected  bool
	}{
		// Prefix-insensitive self-pointer detection.
		{"RS_GCF_000001.1", true},
		{"GB_GCA_000005.1", false},
		// Marker column wins.
		{"GB_GCA_000006.1", true},
		{"RS_GCF_000007.1", false},
		{"RS_GCF_000008.1", true},
		{"GB_GCA_000009.1", true},
	}

	for _, tt := range tests {
		rec, ok := cat.Get(tt.accession)
		require.True(t, ok)
		assert.Equal(t, tt.expected, cat.IsRepresentative(rec),
			"accession %s", tt.accession)
	}
}

func TestIsRepresentativeTruthyValues(t *testing.T) {
	for _, v := range []string{"t", "T", "true", "TRUE", "1", "yes", "y"} {
		rec := catalog.NewRecord("GB_GCA_000010.1", map[string]string{
			"gtdb_representative":        v,
			"gtdb_genome_representative": "GCF_000099.1",
		})
		cat := catalog.New(map[string]*catalog.Record{rec.Accession: rec})
		assert.True(t, cat.IsRepresentative(rec), "marker %q", v)
	}
	for _, v := range []string{"f", "false", "0", "no", "n", "maybe"} {
		rec := catalog.NewRecord("GB_GCA_000010.1", map[string]string{
			"gtdb_representative":        v,
			"gtdb_genome_representative": "GCA_000010.1",
		})
		cat := catalog.New(map[string]*catalog.Record{rec.Accession: rec})
		assert.False(t, cat.IsRepresentative(rec), "marker %q", v)
	}
}

func TestDuplicateRepClusters(t *testing.T) {
	cat := repCatalog()

	// GB_GCA_000006.1 is flagged representative while pointing at the
	// cluster of RS_GCF_000001.1, which is also a representative.
	dups := cat.DuplicateRepClusters([]string{
		"RS_GCF_000001.1", "GB_GCA_000005.1", "GB_GCA_000006.1",
		"RS_GCF_000008.1",
	})

	require.Len(t, dups, 1)
	assert.Equal(t, []string{"GB_GCA_000006.1", "RS_GCF_000001.1"},
		dups["GCF_000001.1"])

	// Without the conflicting genome, no duplicates.
	dups = cat.DuplicateRepClusters([]string{
		"RS_GCF_000001.1", "GB_GCA_000005.1", "RS_GCF_000008.1",
	})
	assert.Empty(t, dups)
}
