package iofetch_test

import (
	"context"
	"testing"

	"github.com/gnames/gtdbdl/internal/iofetch"
	"github.com/gnames/gtdbdl/pkg/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSingle records calls and succeeds for configured paths.
type fakeSingle struct {
	calls   []string
	success map[string]bool
}

func (f *fakeSingle) FetchOne(_ context.Context, _, path string) bool {
	f.calls = append(f.calls, path)
	return f.success[path]
}

func TestSequentialFetchOrder(t *testing.T) {
	jobs := []fetch.Job{
		{URL: "https://example.org/a", Path: "a.fna.gz"},
		{URL: "https://example.org/b", Path: "b.fna.gz"},
		{URL: "https://example.org/c", Path: "c.fna.gz"},
	}
	single := &fakeSingle{success: map[string]bool{
		"a.fna.gz": true,
		"c.fna.gz": true,
	}}
	transfer := iofetch.NewSequential(single, false)

	res := transfer.Fetch(context.Background(), jobs, t.TempDir())

	// Every job gets exactly one call, in input order.
	assert.Equal(t, []string{"a.fna.gz", "b.fna.gz", "c.fna.gz"},
		single.calls)

	require.Len(t, res, 3)
	assert.True(t, res["a.fna.gz"])
	assert.False(t, res["b.fna.gz"])
	assert.True(t, res["c.fna.gz"])
}

func TestSequentialFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	single := &fakeSingle{success: map[string]bool{}}
	transfer := iofetch.NewSequential(single, false)

	res := transfer.Fetch(ctx, []fetch.Job{
		{URL: "https://example.org/a", Path: "a.fna.gz"},
	}, t.TempDir())

	assert.Empty(t, single.calls)
	assert.False(t, res["a.fna.gz"])
}
