package iofetch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/gnsys"
	"github.com/gnames/gtdbdl/pkg/config"
	"github.com/gnames/gtdbdl/pkg/fetch"
	"github.com/gnames/gtdbdl/pkg/gtdb"
)

// EnsureMetadata makes sure the metadata catalog for the configured
// release, dataset and mirror is on disk and returns its path. An already
// downloaded file is reused as is.
func EnsureMetadata(
	ctx context.Context,
	cfg *config.Config,
	transfer fetch.Transfer,
) (string, error) {
	url, err := gtdb.MetadataURL(cfg.Release, cfg.Dataset, cfg.Mirror)
	if err != nil {
		return "", MetadataURLError(err)
	}

	fileName := url[strings.LastIndex(url, "/")+1:]
	target := filepath.Join(cfg.ReleaseDir(), fileName)

	if fileExists(target) {
		slog.Debug("Metadata file already exists", "path", target)
		return target, nil
	}

	if err := gnsys.MakeDir(cfg.ReleaseDir()); err != nil {
		return "", MetadataFetchError(url, err)
	}

	slog.Info("Downloading metadata", "url", url)
	res := transfer.Fetch(
		ctx, []fetch.Job{{URL: url, Path: target}}, cfg.ScratchDir())
	if !res[target] {
		return "", MetadataFetchError(url,
			fmt.Errorf("transfer reported failure"))
	}
	return target, nil
}
