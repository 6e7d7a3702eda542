package iofetch

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gtdbdl/pkg/fetch"
	"github.com/stretchr/testify/assert"
)

func TestInputFile(t *testing.T) {
	jobs := []fetch.Job{
		{
			URL:  "https://example.org/g1_genomic.fna.gz",
			Path: filepath.Join("raw", "g1_genomic.fna.gz"),
		},
		{
			URL:  "https://example.org/g2_genomic.fna.gz",
			Path: filepath.Join("raw", "g2_genomic.fna.gz"),
		},
	}

	expected := "https://example.org/g1_genomic.fna.gz\n" +
		"  dir=raw\n" +
		"  out=g1_genomic.fna.gz\n" +
		"https://example.org/g2_genomic.fna.gz\n" +
		"  dir=raw\n" +
		"  out=g2_genomic.fna.gz\n"
	assert.Equal(t, expected, inputFile(jobs))
}

func TestInputFileEmpty(t *testing.T) {
	assert.Empty(t, inputFile(nil))
}
