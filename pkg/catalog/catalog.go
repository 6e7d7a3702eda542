// Package catalog models a GTDB metadata catalog: one record per genome,
// keyed by accession, loaded once per run and read-only afterwards.
//
// Loading from files lives in internal/iocatalog; this package holds the
// types and the pure queries over a loaded catalog.
package catalog

import (
	"sort"
	"strings"

	"github.com/gnames/gtdbdl/pkg/taxonomy"
)

// Well-known column names of GTDB metadata tables.
const (
	// FieldAccession and FieldGenome identify a genome; the first
	// non-empty one per row wins, in this order.
	FieldAccession = "accession"
	FieldGenome    = "Genome"

	// FieldTaxonomy holds the GTDB taxonomy string.
	FieldTaxonomy = "gtdb_taxonomy"

	// FieldAssemblyName holds the NCBI assembly name used in download URLs.
	FieldAssemblyName = "ncbi_assembly_name"

	// FieldRepFlag marks a genome as its species-cluster representative.
	FieldRepFlag = "gtdb_representative"
)

// repGenomeFields lists, in priority order, the columns that may point at
// the accession of a genome's species-cluster representative.
var repGenomeFields = []string{
	"gtdb_genome_representative",
	"gtdb_representative_genome",
}

// Record is one genome's catalog row: the columns the tool interprets as
// named fields, everything else in Extra.
type Record struct {
	Accession    string
	Taxonomy     string
	AssemblyName string

	// Extra holds all columns not lifted into named fields, keyed by the
	// header name.
	Extra map[string]string
}

// NewRecord builds a Record from a raw table row, lifting the interpreted
// columns into named fields and keeping the rest in Extra.
func NewRecord(accession string, row map[string]string) *Record {
	rec := &Record{
		Accession:    accession,
		Taxonomy:     row[FieldTaxonomy],
		AssemblyName: row[FieldAssemblyName],
		Extra:        make(map[string]string, len(row)),
	}
	for k, v := range row {
		switch k {
		case FieldAccession, FieldGenome, FieldTaxonomy, FieldAssemblyName:
			continue
		}
		rec.Extra[k] = v
	}
	return rec
}

// Field returns the value of a column by header name, whether it was
// lifted into a named field or kept in Extra.
func (r *Record) Field(name string) string {
	switch name {
	case FieldAccession:
		return r.Accession
	case FieldTaxonomy:
		return r.Taxonomy
	case FieldAssemblyName:
		return r.AssemblyName
	}
	return r.Extra[name]
}

// Catalog is an in-memory accession→record mapping. It is immutable after
// construction; all methods are read-only and safe for a single run's
// lifetime.
type Catalog struct {
	records map[string]*Record
}

// New wraps loaded records into a Catalog.
func New(records map[string]*Record) *Catalog {
	return &Catalog{records: records}
}

// Len returns the number of genomes in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Get returns the record for an accession.
func (c *Catalog) Get(accession string) (*Record, bool) {
	rec, ok := c.records[accession]
	return rec, ok
}

// GenomesByTaxon returns the accessions of all genomes whose taxonomy is
// selected by the query, in sorted order. Matching semantics are those of
// taxonomy.Matches; an empty query selects nothing.
func (c *Catalog) GenomesByTaxon(query string) []string {
	var res []string
	for accession, rec := range c.records {
		if taxonomy.Matches(query, rec.Taxonomy) {
			res = append(res, accession)
		}
	}
	sort.Strings(res)
	return res
}

// TaxonPath returns the taxonomy string of a genome together with the
// inferred dataset it belongs to ("bac120" or "ar53").
//
// The dataset inference is a best-effort heuristic, not authoritative: it
// guesses from the accession prefix, then overrides to the archaeal
// dataset when the taxonomy text names the Archaea domain. Callers should
// treat the dataset as advisory only.
func (c *Catalog) TaxonPath(accession string) (string, string, bool) {
	rec, ok := c.records[accession]
	if !ok {
		return "", "", false
	}
	dataset := "bac120"
	if strings.HasPrefix(accession, "GCF") {
		dataset = "ar53"
	}
	if strings.Contains(rec.Taxonomy, "Archaea") {
		dataset = "ar53"
	}
	return rec.Taxonomy, dataset, true
}
