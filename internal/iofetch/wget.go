package iofetch

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/gnames/gtdbdl/pkg/fetch"
)

type wget struct {
	verbose bool
}

// NewWget returns a single-file downloader backed by wget, used as the
// per-file fallback when aria2c is not installed.
func NewWget(verbose bool) fetch.Single {
	return &wget{verbose: verbose}
}

func (w *wget) FetchOne(ctx context.Context, url, path string) bool {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		slog.Error("Cannot create download directory",
			"dir", filepath.Dir(path), "error", err)
		return false
	}

	args := []string{"-O", path, url}
	if !w.verbose {
		args = append([]string{"-q"}, args...)
	}

	cmd := exec.CommandContext(ctx, "wget", args...)
	if w.verbose {
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		slog.Debug("wget failed", "url", url, "error", err)
		// wget -O creates the target even on failure; remove it so
		// file-existence checks stay truthful.
		os.Remove(path)
		return false
	}
	return true
}
