package iocatalog

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gtdbdl/pkg/errcode"
)

func CatalogLoadError(path string, err error) error {
	msg := "Cannot load metadata catalog from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogLoadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load catalog %s: %w",
			fn, path, err),
	}
}

func NoAccessionColumnError(path string) error {
	msg := "Metadata catalog %s has no accession or Genome column"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogNoAccessionColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no accession column in %s", fn, path),
	}
}
