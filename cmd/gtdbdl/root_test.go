package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")

	var foundMetadata, foundGenomes bool
	for _, c := range cmd.Commands() {
		switch c.Name() {
		case "metadata":
			foundMetadata = true
		case "genomes":
			foundGenomes = true
		}
	}
	assert.True(t, foundMetadata, "metadata subcommand should exist")
	assert.True(t, foundGenomes, "genomes subcommand should exist")
}

// TestRootCommand_PersistentFlags verifies shared flags exist
func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	for _, name := range []string{
		"config", "gtdb", "dataset", "mirror", "base-dir", "verbose",
	} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "--%s flag should exist", name)
	}
}

// TestRootCommand_Help verifies help text includes usage
func TestRootCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "gtdbdl")
	assert.Contains(t, helpText, "taxonomy")
	assert.Contains(t, helpText, "Available Commands")
}

// TestGenomesCommand_Flags verifies the genomes command flag surface
func TestGenomesCommand_Flags(t *testing.T) {
	cmd := getGenomesCmd()

	for _, name := range []string{
		"taxon", "flat", "output", "dry-run", "reps",
	} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "--%s flag should exist", name)
	}
}
