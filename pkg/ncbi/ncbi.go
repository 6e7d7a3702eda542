// Package ncbi derives NCBI archive download URLs from genome assembly
// accessions.
//
// The NCBI genomes archive shards assemblies by the digits of the
// accession: GCF_034719275.1 with assembly name ASM3471927v1 lives at
//
//	https://ftp.ncbi.nlm.nih.gov/genomes/all/GCF/034/719/275/GCF_034719275.1_ASM3471927v1/GCF_034719275.1_ASM3471927v1_genomic.fna.gz
//
// GTDB accessions may carry an RS_ (RefSeq) or GB_ (GenBank) source
// indicator prefix that is not part of the NCBI accession and is stripped
// before derivation.
package ncbi

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gtdbdl/pkg/errcode"
)

// ArchiveRoot is the fixed root of the NCBI genome assembly archive.
const ArchiveRoot = "https://ftp.ncbi.nlm.nih.gov/genomes/all"

// NormalizeAccession strips the RS_ or GB_ source indicator prefix from an
// accession if one is present. Every accession equality comparison must go
// through this normalization.
func NormalizeAccession(accession string) string {
	if strings.HasPrefix(accession, "RS_") ||
		strings.HasPrefix(accession, "GB_") {
		return accession[3:]
	}
	return accession
}

// DeriveURL maps an accession and an NCBI assembly name to the download URL
// of the genomic FASTA file. It is a pure function of its inputs.
//
// Errors: MissingFieldError when either input is empty,
// UnrecognizedAccessionError when the normalized accession does not start
// with GCA_ or GCF_, MalformedAccessionError when the digit run is absent
// or too short to shard into 3+3+rest groups.
func DeriveURL(accession, assemblyName string) (string, error) {
	if accession == "" || assemblyName == "" {
		return "", missingFieldError(accession, assemblyName)
	}

	acc := NormalizeAccession(accession)
	if !strings.HasPrefix(acc, "GCA_") && !strings.HasPrefix(acc, "GCF_") {
		return "", unrecognizedAccessionError(acc)
	}

	// GCF_034719275.1 -> prefix GCF, digit run 034719275.
	prefix := acc[:3]
	digits, _, _ := strings.Cut(acc[4:], ".")
	if digits == "" || !allDigits(digits) {
		return "", malformedAccessionError(acc)
	}

	// Shard the digit run into 034/719/275; the remainder after the first
	// two groups of three must not be empty.
	if len(digits) < 7 {
		return "", malformedAccessionError(acc)
	}
	d1, d2, d3 := digits[:3], digits[3:6], digits[6:]

	dir := fmt.Sprintf("%s/%s/%s/%s/%s/%s_%s",
		ArchiveRoot, prefix, d1, d2, d3, acc, assemblyName)
	return fmt.Sprintf("%s/%s_%s_genomic.fna.gz", dir, acc, assemblyName), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func missingFieldError(accession, assemblyName string) error {
	msg := "Missing required fields: accession=%s, assembly_name=%s"
	vars := []any{accession, assemblyName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: missing accession or assembly name (%q, %q)",
			fn, accession, assemblyName),
	}
}

func unrecognizedAccessionError(accession string) error {
	msg := "Unrecognized accession format: %s"
	vars := []any{accession}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnrecognizedAccessionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: accession %q has no GCA_/GCF_ prefix", fn, accession),
	}
}

func malformedAccessionError(accession string) error {
	msg := "Malformed accession: %s"
	vars := []any{accession}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedAccessionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: accession %q has a digit run too short to shard",
			fn, accession),
	}
}
