package schedule

import (
	"context"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// DocStats reports the document count and max id for a language in the
// knowledge store.
type DocStats interface {
	Stats(ctx context.Context, language string) (count int64, maxID int64, err error)
}

// IndexStats reports the size and max id of the loaded vector index.
type IndexStats interface {
	IndexSize() int
	IndexMaxID() int64
}

// IndexFreshnessJob compares the knowledge store against the in-memory
// vector index and warns when they drift apart, which means the index file
// is stale and a rebuild is due. The index itself is immutable at runtime,
// so the job only observes and never mutates.
type IndexFreshnessJob struct {
	docs     DocStats
	index    IndexStats
	language string
}

func NewIndexFreshnessJob(docs DocStats, index IndexStats, language string) (*IndexFreshnessJob, error) {
	if docs == nil || index == nil {
		return nil, fmt.Errorf("freshness job requires doc stats and index stats")
	}
	if language == "" {
		return nil, fmt.Errorf("freshness job requires a language")
	}
	return &IndexFreshnessJob{docs: docs, index: index, language: language}, nil
}

func (j *IndexFreshnessJob) Name() string {
	return "index_freshness"
}

func (j *IndexFreshnessJob) Run(ctx context.Context) error {
	count, maxID, err := j.docs.Stats(ctx, j.language)
	if err != nil {
		return fmt.Errorf("read doc stats: %w", err)
	}
	indexSize := int64(j.index.IndexSize())
	indexMaxID := j.index.IndexMaxID()

	logger := logutil.GetLogger(ctx).With(
		zap.String("language", j.language),
		zap.Int64("doc_count", count),
		zap.Int64("doc_max_id", maxID),
		zap.Int64("index_size", indexSize),
		zap.Int64("index_max_id", indexMaxID),
	)
	if count != indexSize || maxID != indexMaxID {
		logger.Warn("vector index is stale, rebuild recommended")
		return nil
	}
	logger.Info("vector index is fresh")
	return nil
}
