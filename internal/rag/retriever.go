package rag

import (
	"context"
	"fmt"

	"github.com/dorilab/dori/internal/ai"
	"github.com/dorilab/dori/internal/vecindex"
)

// Retriever turns a pivot-language question into a ranked list of knowledge
// document ids. The index is loaded once at startup and scanned read-only,
// so Retrieve is safe for concurrent use.
type Retriever struct {
	index    *vecindex.Index
	embedder ai.IEmbedder
	topK     int
}

func NewRetriever(index *vecindex.Index, embedder ai.IEmbedder, topK int) (*Retriever, error) {
	if index == nil {
		return nil, fmt.Errorf("retriever requires an index")
	}
	if embedder == nil {
		return nil, fmt.Errorf("retriever requires an embedder")
	}
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{index: index, embedder: embedder, topK: topK}, nil
}

func (r *Retriever) Retrieve(ctx context.Context, question string) ([]int64, error) {
	vec, err := r.embedder.Embed(ctx, question, ai.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	matches := r.index.Search(vec, r.topK)
	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (r *Retriever) IndexSize() int {
	return r.index.Len()
}

func (r *Retriever) IndexMaxID() int64 {
	return r.index.MaxID()
}
