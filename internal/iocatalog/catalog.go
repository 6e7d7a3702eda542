// Package iocatalog loads GTDB metadata catalogs from delimited files.
package iocatalog

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/gnames/gtdbdl/pkg/catalog"
)

// Load reads a metadata table into a catalog. The file is a
// tab-separated table with a header row, gzip-compressed when the path
// ends in ".gz". Each row is keyed by its accession column (`accession`,
// else `Genome`); rows without a usable identifier are dropped silently.
// Column values beyond the identifier are not validated here; missing
// fields surface later at the point of use.
func Load(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CatalogLoadError(path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, CatalogLoadError(path, err)
		}
		defer gz.Close()
		reader = gz
	}

	return parse(path, reader)
}

func parse(path string, r io.Reader) (*catalog.Catalog, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.LazyQuotes = true
	tsv.FieldsPerRecord = -1

	header, err := tsv.Read()
	if err != nil {
		return nil, CatalogLoadError(path, err)
	}

	accessionCol, genomeCol := -1, -1
	for i, name := range header {
		switch name {
		case catalog.FieldAccession:
			accessionCol = i
		case catalog.FieldGenome:
			genomeCol = i
		}
	}
	if accessionCol < 0 && genomeCol < 0 {
		return nil, NoAccessionColumnError(path)
	}

	records := make(map[string]*catalog.Record)
	for {
		fields, err := tsv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CatalogLoadError(path, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}

		accession := ""
		if accessionCol >= 0 {
			accession = row[catalog.FieldAccession]
		}
		if accession == "" && genomeCol >= 0 {
			accession = row[catalog.FieldGenome]
		}
		if accession == "" {
			continue
		}
		records[accession] = catalog.NewRecord(accession, row)
	}

	return catalog.New(records), nil
}
