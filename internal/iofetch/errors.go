package iofetch

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gtdbdl/pkg/errcode"
)

func MetadataURLError(err error) error {
	msg := "Cannot determine metadata URL: %v"
	vars := []any{err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MetadataURLError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func MetadataFetchError(url string, err error) error {
	msg := "Cannot download metadata from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MetadataFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot download metadata %s: %w",
			fn, url, err),
	}
}

func NoDownloaderError() error {
	msg := "Neither aria2c nor wget found in PATH; install one of them"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoDownloaderError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no downloader in PATH", fn),
	}
}
