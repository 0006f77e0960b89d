package schedule

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDocStats struct {
	count int64
	maxID int64
	err   error
}

func (f *fakeDocStats) Stats(ctx context.Context, language string) (int64, int64, error) {
	return f.count, f.maxID, f.err
}

type fakeIndexStats struct {
	size  int
	maxID int64
}

func (f *fakeIndexStats) IndexSize() int    { return f.size }
func (f *fakeIndexStats) IndexMaxID() int64 { return f.maxID }

func TestFreshnessJobFreshAndStale(t *testing.T) {
	docs := &fakeDocStats{count: 6, maxID: 6}
	index := &fakeIndexStats{size: 6, maxID: 6}
	job, err := NewIndexFreshnessJob(docs, index, "en")
	require.NoError(t, err)
	require.Equal(t, "index_freshness", job.Name())
	require.NoError(t, job.Run(context.Background()))

	docs.count = 8
	docs.maxID = 9
	require.NoError(t, job.Run(context.Background()))
}

func TestFreshnessJobStatsError(t *testing.T) {
	docs := &fakeDocStats{err: fmt.Errorf("db down")}
	job, err := NewIndexFreshnessJob(docs, &fakeIndexStats{}, "en")
	require.NoError(t, err)
	require.Error(t, job.Run(context.Background()))
}

func TestFreshnessJobRequiresDeps(t *testing.T) {
	_, err := NewIndexFreshnessJob(nil, &fakeIndexStats{}, "en")
	require.Error(t, err)
	_, err = NewIndexFreshnessJob(&fakeDocStats{}, &fakeIndexStats{}, "")
	require.Error(t, err)
}
