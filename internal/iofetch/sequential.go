package iofetch

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gtdbdl/pkg/fetch"
)

type sequential struct {
	single   fetch.Single
	progress bool
}

// NewSequential wraps a single-file downloader into the batch transfer
// contract: jobs are fetched one at a time, in input order, each exactly
// once. With progress enabled a bar tracks the batch.
func NewSequential(single fetch.Single, progress bool) fetch.Transfer {
	return &sequential{single: single, progress: progress}
}

func (s *sequential) Fetch(
	ctx context.Context,
	jobs []fetch.Job,
	_ string,
) map[string]bool {
	res := make(map[string]bool, len(jobs))

	var bar *pb.ProgressBar
	if s.progress && len(jobs) > 1 {
		bar = pb.Full.Start(len(jobs))
		bar.Set("prefix", "Downloading genomes: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for _, j := range jobs {
		if ctx.Err() != nil {
			res[j.Path] = false
			continue
		}
		res[j.Path] = s.single.FetchOne(ctx, j.URL, j.Path)
		if bar != nil {
			bar.Add(1)
		}
	}
	return res
}
