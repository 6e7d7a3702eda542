// Package gtdb describes the GTDB release layout: known releases, metadata
// datasets and download mirrors. It is the single place that knows how to
// address a metadata file on the GTDB servers.
package gtdb

import (
	"fmt"
	"sort"
)

// Mirrors maps a mirror name to the base URL of its releases directory.
var Mirrors = map[string]string{
	"europe":        "https://data.gtdb.aau.ecogenomic.org/releases/",
	"asia-pacific1": "https://data.gtdb.ecogenomic.org/releases/",
	"asia-pacific2": "https://data.ace.uq.edu.au/public/gtdb/data/releases/",
}

// Releases maps a GTDB release tag to its path under a mirror's releases
// directory.
var Releases = map[string]string{
	"r207": "release207/207.0",
	"r214": "release214/214.1",
	"r220": "release220/220.0",
	"r226": "release226/226.0",
}

// Datasets maps a dataset name to the metadata filename pattern. The single
// placeholder takes the release tag.
var Datasets = map[string]string{
	"bac120": "bac120_metadata_%s.tsv.gz",
	"ar53":   "ar53_metadata_%s.tsv.gz",
}

// DefaultMirror is used when no mirror is given.
const DefaultMirror = "europe"

// DefaultDataset is used when no dataset is given.
const DefaultDataset = "bac120"

// MetadataURL returns the download URL of the metadata file for the given
// release, dataset and mirror.
func MetadataURL(release, dataset, mirror string) (string, error) {
	baseURL, ok := Mirrors[mirror]
	if !ok {
		return "", fmt.Errorf(
			"unknown mirror %q, available: %v", mirror, keys(Mirrors),
		)
	}
	relPath, ok := Releases[release]
	if !ok {
		return "", fmt.Errorf(
			"unknown release %q, available: %v", release, keys(Releases),
		)
	}
	filePattern, ok := Datasets[dataset]
	if !ok {
		return "", fmt.Errorf(
			"unknown dataset %q, available: %v", dataset, keys(Datasets),
		)
	}
	fileName := fmt.Sprintf(filePattern, release)
	return baseURL + relPath + "/" + fileName, nil
}

// ReleaseTags returns the known release tags in sorted order, for CLI help
// and validation messages.
func ReleaseTags() []string {
	return keys(Releases)
}

func keys(m map[string]string) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
