// Package iofetch moves files with external downloaders.
//
// The transfer strategy is picked once per run: aria2c when installed
// (one batch job for the whole plan), otherwise wget called once per file
// in plan order. Both strategies implement the fetch.Transfer contract of
// jobs in, per-path success out; the planner never branches on which one
// is active.
package iofetch

import (
	"os/exec"

	"github.com/gnames/gtdbdl/pkg/fetch"
)

// NewTransfer picks the transfer strategy for this run and returns it with
// the name of the external downloader it uses. It fails only when neither
// downloader is in PATH.
func NewTransfer(verbose bool) (fetch.Transfer, string, error) {
	if _, err := exec.LookPath("aria2c"); err == nil {
		return NewAria2(verbose), "aria2c", nil
	}
	if _, err := exec.LookPath("wget"); err == nil {
		return NewSequential(NewWget(verbose), !verbose), "wget", nil
	}
	return nil, "", NoDownloaderError()
}
