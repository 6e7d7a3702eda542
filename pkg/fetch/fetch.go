// Package fetch plans and reconciles genome downloads.
//
// Planning decides what is missing; moving bytes is delegated to a
// Transfer strategy picked once per run (internal/iofetch): a
// batch-capable downloader when one is installed, otherwise sequential
// one-at-a-time fallback. Either way the contract is a (url, path) list
// in, a path→success map out, and the planner reconciles that map against
// the filesystem afterwards.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gtdbdl/pkg/catalog"
	"github.com/gnames/gtdbdl/pkg/ncbi"
)

// Job is one file to transfer.
type Job struct {
	URL  string
	Path string
}

// Transfer moves a batch of files and reports per-path success. The call
// is long-running; implementations honor ctx cancellation. scratchDir is
// writable space for transfer bookkeeping (batch input files).
type Transfer interface {
	Fetch(ctx context.Context, jobs []Job, scratchDir string) map[string]bool
}

// Single transfers one file. The sequential fallback strategy wraps it.
type Single interface {
	FetchOne(ctx context.Context, url, path string) bool
}

// Entry is one matched genome resolved for download.
type Entry struct {
	Accession string
	Taxonomy  string
	Dataset   string
	URL       string
	Path      string
	IsRep     bool
	ClusterID string

	// Present is true when the target file already existed at planning
	// time.
	Present bool
}

// Filename returns the final path segment of the entry's URL, the name
// the file keeps on disk.
func (e Entry) Filename() string {
	return e.URL[strings.LastIndex(e.URL, "/")+1:]
}

// Failure records one genome that could not be resolved to a download.
type Failure struct {
	Accession string
	Err       error
}

// Plan is the outcome of the planning phase: resolvable genomes in input
// order, plus the genomes that failed resolution.
type Plan struct {
	Entries  []Entry
	Failures []Failure
}

// ToFetch returns the jobs for entries whose target is not yet on disk,
// in plan order.
func (p *Plan) ToFetch() []Job {
	var jobs []Job
	for _, e := range p.Entries {
		if !e.Present {
			jobs = append(jobs, Job{URL: e.URL, Path: e.Path})
		}
	}
	return jobs
}

// Result reconciles a plan with transfer outcomes.
type Result struct {
	// Done holds the entries whose file is on disk after the run,
	// whether it was already present or fetched now.
	Done []Entry

	// Failed counts resolution failures plus transfer failures.
	Failed int
}

// Planner resolves matched genomes against a catalog.
type Planner struct {
	cat *catalog.Catalog

	// exists reports whether a target file is on disk. Overridable in
	// tests.
	exists func(path string) bool
}

// Option modifies a Planner.
type Option func(*Planner)

// OptExists replaces the file-existence check, mostly for tests.
func OptExists(exists func(path string) bool) Option {
	return func(p *Planner) {
		p.exists = exists
	}
}

// NewPlanner creates a Planner over a loaded catalog.
func NewPlanner(cat *catalog.Catalog, opts ...Option) *Planner {
	res := &Planner{
		cat: cat,
		exists: func(path string) bool {
			st, err := os.Stat(path)
			return err == nil && !st.IsDir()
		},
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Plan resolves taxonomy and download URL for each accession, computes the
// local target under genomesDir and classifies it as present or to-fetch.
// A genome failing any resolution step is recorded as a Failure and never
// aborts the batch.
func (p *Planner) Plan(accessions []string, genomesDir string) *Plan {
	plan := &Plan{}
	for _, accession := range accessions {
		rec, ok := p.cat.Get(accession)
		if !ok {
			plan.Failures = append(plan.Failures, Failure{
				Accession: accession,
				Err:       errNotInCatalog(accession),
			})
			continue
		}

		taxonomyStr, dataset, ok := p.cat.TaxonPath(accession)
		if !ok {
			plan.Failures = append(plan.Failures, Failure{
				Accession: accession,
				Err:       errNotInCatalog(accession),
			})
			continue
		}

		url, err := ncbi.DeriveURL(rec.Accession, rec.AssemblyName)
		if err != nil {
			plan.Failures = append(plan.Failures, Failure{
				Accession: accession,
				Err:       err,
			})
			continue
		}

		entry := Entry{
			Accession: accession,
			Taxonomy:  taxonomyStr,
			Dataset:   dataset,
			URL:       url,
			IsRep:     p.cat.IsRepresentative(rec),
			ClusterID: p.cat.ClusterRepresentative(rec),
		}
		entry.Path = filepath.Join(genomesDir, entry.Filename())
		entry.Present = p.exists(entry.Path)
		plan.Entries = append(plan.Entries, entry)
	}
	return plan
}

// Execute transfers every to-fetch entry of the plan through the given
// strategy and reconciles the reported outcomes with the filesystem: an
// entry whose target exists after the transfer counts as downloaded even
// when the transfer reported failure (a file left by an earlier partial
// run is still a downloaded file).
func (p *Planner) Execute(
	ctx context.Context,
	plan *Plan,
	transfer Transfer,
	scratchDir string,
) *Result {
	res := &Result{Failed: len(plan.Failures)}

	jobs := plan.ToFetch()
	var fetched map[string]bool
	if len(jobs) > 0 {
		fetched = transfer.Fetch(ctx, jobs, scratchDir)
	}

	for _, e := range plan.Entries {
		if e.Present || fetched[e.Path] || p.exists(e.Path) {
			res.Done = append(res.Done, e)
			continue
		}
		res.Failed++
	}
	return res
}

func errNotInCatalog(accession string) error {
	return fmt.Errorf("no catalog record for %s", accession)
}
