package rag

import (
	"context"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/ai"
	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/vecindex"
)

// DocLister streams the whole corpus for one language in id order.
type DocLister interface {
	ListByLanguage(ctx context.Context, language string) ([]*model.KnowledgeDoc, error)
}

// IndexBuilder embeds every knowledge doc and assembles the flat vector
// index. Rebuilds are offline and wholesale: the doc table is append-only,
// so a stale index is replaced by running the builder again.
type IndexBuilder struct {
	docs     DocLister
	embedder ai.IEmbedder
}

func NewIndexBuilder(docs DocLister, embedder ai.IEmbedder) (*IndexBuilder, error) {
	if docs == nil || embedder == nil {
		return nil, fmt.Errorf("index builder requires docs and embedder")
	}
	return &IndexBuilder{docs: docs, embedder: embedder}, nil
}

func (b *IndexBuilder) Build(ctx context.Context, language string) (*vecindex.Index, error) {
	docs, err := b.docs.ListByLanguage(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no knowledge docs for language %q", language)
	}
	logger := logutil.GetLogger(ctx).With(
		zap.String("language", language),
		zap.String("model", b.embedder.ModelName()))
	logger.Info("embedding corpus", zap.Int("docs", len(docs)))

	entries := make([]vecindex.Entry, 0, len(docs))
	for _, doc := range docs {
		vec, err := b.embedder.Embed(ctx, doc.Text, ai.TaskRetrievalDocument)
		if err != nil {
			return nil, fmt.Errorf("embed doc %d: %w", doc.ID, err)
		}
		entries = append(entries, vecindex.Entry{ID: doc.ID, Vector: vec})
	}

	index, err := vecindex.Build(len(entries[0].Vector), entries)
	if err != nil {
		return nil, err
	}
	logger.Info("index built", zap.Int("size", index.Len()), zap.Int("dim", index.Dim()))
	return index, nil
}

// BuildAndSave rebuilds the index and atomically replaces the file at path.
func (b *IndexBuilder) BuildAndSave(ctx context.Context, language string, path string) error {
	index, err := b.Build(ctx, language)
	if err != nil {
		return err
	}
	if err := index.Save(path); err != nil {
		return fmt.Errorf("save index: %w", err)
	}
	logutil.GetLogger(ctx).Info("index saved", zap.String("path", path))
	return nil
}
