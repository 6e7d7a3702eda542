package catalog

import (
	"sort"
	"strings"

	"github.com/gnames/gtdbdl/pkg/ncbi"
)

// truthy values accepted in the representative marker column.
var truthy = map[string]bool{
	"t": true, "true": true, "1": true, "yes": true, "y": true,
}

// ClusterRepresentative returns the normalized accession of the genome's
// species-cluster representative: the first non-empty representative
// pointer column, else the genome's own accession (a genome with no
// pointer is its own representative). Source indicator prefixes are
// stripped so that RS_/GB_ variants of the same accession compare equal.
func (c *Catalog) ClusterRepresentative(rec *Record) string {
	for _, field := range repGenomeFields {
		if v := strings.TrimSpace(rec.Field(field)); v != "" {
			return ncbi.NormalizeAccession(v)
		}
	}
	return ncbi.NormalizeAccession(rec.Accession)
}

// IsRepresentative reports whether the genome is the representative of its
// species cluster. An explicit marker column wins when present; otherwise
// the genome is a representative when its normalized accession equals its
// cluster representative's.
func (c *Catalog) IsRepresentative(rec *Record) bool {
	if v := strings.TrimSpace(rec.Field(FieldRepFlag)); v != "" {
		return truthy[strings.ToLower(v)]
	}
	return ncbi.NormalizeAccession(rec.Accession) ==
		c.ClusterRepresentative(rec)
}

// DuplicateRepClusters groups the given genomes by cluster representative
// and returns the clusters in which more than one genome is flagged as the
// representative. A non-empty result indicates inconsistent source
// metadata and is worth a diagnostic, not an error.
func (c *Catalog) DuplicateRepClusters(
	accessions []string,
) map[string][]string {
	flagged := make(map[string][]string)
	for _, accession := range accessions {
		rec, ok := c.records[accession]
		if !ok || !c.IsRepresentative(rec) {
			continue
		}
		cluster := c.ClusterRepresentative(rec)
		flagged[cluster] = append(flagged[cluster], accession)
	}

	res := make(map[string][]string)
	for cluster, members := range flagged {
		if len(members) > 1 {
			sort.Strings(members)
			res[cluster] = members
		}
	}
	return res
}
