package iofetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gnames/gnsys"
	"github.com/gnames/gtdbdl/pkg/fetch"
	"github.com/google/uuid"
)

// maxConnections is the per-server connection count handed to aria2c.
const maxConnections = 4

type aria2 struct {
	verbose bool
}

// NewAria2 returns the batch transfer strategy backed by aria2c. All jobs
// go into one aria2c invocation through an input file written to the
// scratch directory.
func NewAria2(verbose bool) fetch.Transfer {
	return &aria2{verbose: verbose}
}

func (a *aria2) Fetch(
	ctx context.Context,
	jobs []fetch.Job,
	scratchDir string,
) map[string]bool {
	res := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		res[j.Path] = false
	}
	if len(jobs) == 0 {
		return res
	}

	for _, j := range jobs {
		if err := gnsys.MakeDir(filepath.Dir(j.Path)); err != nil {
			slog.Error("Cannot create download directory",
				"dir", filepath.Dir(j.Path), "error", err)
			return res
		}
	}
	if err := gnsys.MakeDir(scratchDir); err != nil {
		slog.Error("Cannot create scratch directory",
			"dir", scratchDir, "error", err)
		return res
	}

	inputPath := filepath.Join(scratchDir,
		"aria2-"+uuid.New().String()+".txt")
	if err := os.WriteFile(
		inputPath, []byte(inputFile(jobs)), 0644,
	); err != nil {
		slog.Error("Cannot write batch input file",
			"path", inputPath, "error", err)
		return res
	}
	defer os.Remove(inputPath)

	args := []string{
		"--input-file=" + inputPath,
		fmt.Sprintf("--max-connection-per-server=%d", maxConnections),
		fmt.Sprintf("--split=%d", maxConnections),
		"-k", "1M",
		"--auto-file-renaming=false",
		"--allow-overwrite=true",
	}
	if !a.verbose {
		args = append(args, "--quiet")
	}

	cmd := exec.CommandContext(ctx, "aria2c", args...)
	if a.verbose {
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		// aria2c exits non-zero when any download failed; per-target
		// outcomes still come from the filesystem below.
		slog.Debug("aria2c finished with error", "error", err)
	}

	for _, j := range jobs {
		res[j.Path] = fileExists(j.Path)
	}
	return res
}

// inputFile renders jobs in the aria2c --input-file format: the URL on one
// line, indented dir= and out= options on the following lines.
func inputFile(jobs []fetch.Job) string {
	var b strings.Builder
	for _, j := range jobs {
		b.WriteString(j.URL)
		b.WriteString("\n  dir=")
		b.WriteString(filepath.Dir(j.Path))
		b.WriteString("\n  out=")
		b.WriteString(filepath.Base(j.Path))
		b.WriteString("\n")
	}
	return b.String()
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
