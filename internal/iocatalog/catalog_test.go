package iocatalog_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gtdbdl/internal/iocatalog"
	"github.com/gnames/gtdbdl/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTSV = "accession\tgtdb_taxonomy\tncbi_assembly_name\tgtdb_representative\n" +
	"RS_GCF_000001.1\td__Bacteria;p__Bacillota\tASM1v1\tt\n" +
	"GB_GCA_000002.1\td__Bacteria;p__Proteobacteria\tASM2v1\tf\n" +
	"\td__Bacteria\tASM3v1\tf\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeGzFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func TestLoadPlain(t *testing.T) {
	path := writeFile(t, "bac120_metadata_r226.tsv", testTSV)

	cat, err := iocatalog.Load(path)
	require.NoError(t, err)

	// The row without an identifier is dropped.
	assert.Equal(t, 2, cat.Len())

	rec, ok := cat.Get("RS_GCF_000001.1")
	require.True(t, ok)
	assert.Equal(t, "d__Bacteria;p__Bacillota", rec.Taxonomy)
	assert.Equal(t, "ASM1v1", rec.AssemblyName)
	assert.Equal(t, "t", rec.Field("gtdb_representative"))
}

func TestLoadGzip(t *testing.T) {
	path := writeGzFile(t, "bac120_metadata_r226.tsv.gz", testTSV)

	cat, err := iocatalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestLoadGenomeColumnFallback(t *testing.T) {
	tsv := "Genome\tgtdb_taxonomy\n" +
		"GB_GCA_000004.1\td__Archaea;p__Thermoproteota\n"
	path := writeFile(t, "catalog.tsv", tsv)

	cat, err := iocatalog.Load(path)
	require.NoError(t, err)

	rec, ok := cat.Get("GB_GCA_000004.1")
	require.True(t, ok)
	assert.Equal(t, "d__Archaea;p__Thermoproteota", rec.Taxonomy)
}

func TestLoadRaggedRows(t *testing.T) {
	// Short rows keep the columns they have; missing ones read as empty.
	tsv := "accession\tgtdb_taxonomy\tncbi_assembly_name\n" +
		"RS_GCF_000005.1\td__Bacteria\n"
	path := writeFile(t, "catalog.tsv", tsv)

	cat, err := iocatalog.Load(path)
	require.NoError(t, err)

	rec, ok := cat.Get("RS_GCF_000005.1")
	require.True(t, ok)
	assert.Empty(t, rec.AssemblyName)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unreadable file", func(t *testing.T) {
		_, err := iocatalog.Load(
			filepath.Join(t.TempDir(), "no_such_file.tsv"))
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.CatalogLoadError, gnErr.Code)
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		path := writeFile(t, "catalog.tsv.gz", "not gzip at all")
		_, err := iocatalog.Load(path)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.CatalogLoadError, gnErr.Code)
	})

	t.Run("no accession column", func(t *testing.T) {
		path := writeFile(t, "catalog.tsv",
			"taxid\tgtdb_taxonomy\n1\td__Bacteria\n")
		_, err := iocatalog.Load(path)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.CatalogNoAccessionColumnError, gnErr.Code)
	})
}
