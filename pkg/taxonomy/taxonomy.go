// Package taxonomy parses and matches GTDB taxonomy strings.
//
// A taxonomy string is a semicolon-delimited ordered list of rank
// components, each of the form `<letter>__<name>`, with ranks ordered
// domain→species and letters d, p, c, o, f, g, s:
//
//	d__Bacteria;p__Bacillota;c__Bacilli;o__Bacillales;f__Bacillaceae;g__Bacillus;s__Bacillus subtilis
//
// Queries come in two shapes. A path query names an ordered lineage prefix
// anchored at the domain rank ("d__Bacteria;p__Bacillota"). A bare query
// names a single rank value that may sit at any rank ("Bacillota"). Both
// compare whole components, never substrings.
package taxonomy

import (
	"strings"
)

// rankPrefixes maps a rank given as a letter or a full rank word to the
// single-letter code used in component prefixes.
var rankPrefixes = map[string]string{
	"domain": "d", "d": "d",
	"phylum": "p", "p": "p",
	"class": "c", "c": "c",
	"order": "o", "o": "o",
	"family": "f", "f": "f",
	"genus": "g", "g": "g",
	"species": "s", "s": "s",
}

// RankNames lists the accepted rank words in lineage order.
var RankNames = []string{
	"domain", "phylum", "class", "order", "family", "genus", "species",
}

// Segment splits a taxonomy string into its ordered components. Whitespace
// around components is trimmed and empty components are dropped, so the
// function is idempotent and an empty or whitespace-only string yields nil.
func Segment(taxonomy string) []string {
	var res []string
	for _, comp := range strings.Split(taxonomy, ";") {
		comp = strings.TrimSpace(comp)
		if comp != "" {
			res = append(res, comp)
		}
	}
	return res
}

// StripRankPrefix drops a `<letter>__` rank prefix from a component if one
// is present, returning the bare name otherwise unchanged.
func StripRankPrefix(component string) string {
	if hasRankPrefix(component) {
		return component[3:]
	}
	return component
}

// hasRankPrefix reports whether a component starts with a single-letter
// rank code followed by a double underscore.
func hasRankPrefix(component string) bool {
	if len(component) < 3 || component[1] != '_' || component[2] != '_' {
		return false
	}
	_, ok := rankPrefixes[strings.ToLower(component[:1])]
	return ok
}

// ComponentAtRank returns the first component of the taxonomy at the given
// rank and true, or "" and false if the taxonomy has no component at that
// rank. The rank is accepted as a single letter or a full rank word,
// case-insensitive.
func ComponentAtRank(taxonomy, rank string) (string, bool) {
	letter, ok := rankPrefixes[strings.ToLower(strings.TrimSpace(rank))]
	if !ok {
		return "", false
	}
	prefix := letter + "__"
	for _, comp := range Segment(taxonomy) {
		if strings.HasPrefix(strings.ToLower(comp), prefix) {
			return comp, true
		}
	}
	return "", false
}

// Matches reports whether a taxon query selects the given taxonomy string.
//
// A multi-component query is a lineage path anchored at the domain rank: the
// taxonomy must be at least as long, and every query component must equal
// the taxonomy component at the same position. A single-component query
// matches if it equals any one component of the taxonomy.
//
// A query component that carries a rank prefix is compared verbatim against
// the full taxonomy component; a bare query component is compared against
// the taxonomy component's bare name. All comparison is case-insensitive
// and whole-component; "Bacill" never matches "Bacillota".
func Matches(query, taxonomy string) bool {
	queryComps := Segment(query)
	if len(queryComps) == 0 {
		return false
	}
	taxComps := Segment(taxonomy)

	if len(queryComps) > 1 {
		if len(taxComps) < len(queryComps) {
			return false
		}
		for i, qc := range queryComps {
			if !componentEqual(qc, taxComps[i]) {
				return false
			}
		}
		return true
	}

	for _, tc := range taxComps {
		if componentEqual(queryComps[0], tc) {
			return true
		}
	}
	return false
}

// componentEqual compares one query component against one taxonomy
// component. With a rank prefix on the query the whole components must be
// equal; without one only the bare names are compared.
func componentEqual(queryComp, taxComp string) bool {
	if hasRankPrefix(queryComp) {
		return strings.EqualFold(queryComp, taxComp)
	}
	return strings.EqualFold(queryComp, StripRankPrefix(taxComp))
}

// PathParts converts a taxonomy string into directory names, one per rank:
// rank prefixes are stripped and the names sanitized with SanitizeName.
// Components that are empty after sanitization are dropped.
func PathParts(taxonomy string) []string {
	var res []string
	for _, comp := range Segment(taxonomy) {
		name := SanitizeName(StripRankPrefix(comp))
		if name != "" {
			res = append(res, name)
		}
	}
	return res
}

// SanitizeName makes a taxon name safe as a single directory name: spaces
// become underscores and leading or trailing slashes are removed.
func SanitizeName(name string) string {
	out := strings.ReplaceAll(name, " ", "_")
	return strings.Trim(out, "/\\")
}
