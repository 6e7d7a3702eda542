package iolink

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gtdbdl/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func CreateLinkError(linkPath string, err error) error {
	msg := "Cannot create link %s"
	vars := []any{linkPath}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLinkError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create link: %w",
			fn, err),
	}
}
