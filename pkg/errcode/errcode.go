// Package errcode defines error codes for all gtdbdl errors.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CreateLinkError

	// Catalog errors
	CatalogLoadError
	CatalogNoAccessionColumnError

	// Accession and URL errors
	MissingFieldError
	UnrecognizedAccessionError
	MalformedAccessionError

	// Fetch errors
	MetadataURLError
	MetadataFetchError
	NoDownloaderError
)
