// Package iolink creates the symlinks of the taxonomy mirror.
package iolink

import (
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/gnames/gtdbdl/pkg/link"
)

type linker struct{}

// New returns the filesystem-backed Linker.
func New() link.Linker {
	return &linker{}
}

// Link symlinks linkPath to the absolute path of target, creating parent
// directories as needed. An already existing link is left untouched.
func (l *linker) Link(target, linkPath string) error {
	if err := gnsys.MakeDir(filepath.Dir(linkPath)); err != nil {
		return CreateDirError(filepath.Dir(linkPath), err)
	}

	if _, err := os.Lstat(linkPath); err == nil {
		return nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return CreateLinkError(linkPath, err)
	}
	if err := os.Symlink(abs, linkPath); err != nil {
		return CreateLinkError(linkPath, err)
	}
	return nil
}
