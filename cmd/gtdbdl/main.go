// Package main provides the gtdbdl CLI application.
// gtdbdl downloads genome assemblies for a GTDB taxon and mirrors them
// into a taxonomy-shaped directory tree.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
