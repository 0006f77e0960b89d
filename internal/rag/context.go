package rag

import (
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/model"
)

// DocGetter resolves knowledge documents by id.
type DocGetter interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*model.KnowledgeDoc, error)
}

// ContextAssembler builds the grounding blob for a question. When retrieval
// is disabled or anything in the retrieve/resolve path fails, it returns an
// empty string and the caller falls back to ungrounded generation.
type ContextAssembler struct {
	enabled   bool
	retriever *Retriever
	docs      DocGetter
}

func NewContextAssembler(enabled bool, retriever *Retriever, docs DocGetter) *ContextAssembler {
	return &ContextAssembler{enabled: enabled, retriever: retriever, docs: docs}
}

func (a *ContextAssembler) Enabled() bool {
	return a.enabled && a.retriever != nil && a.docs != nil
}

// BuildContext returns the concatenated text of the retrieved documents in
// ranking order. spotCode is accepted for logging; retrieval is global
// across the whole place.
func (a *ContextAssembler) BuildContext(ctx context.Context, question string, spotCode string) string {
	if !a.Enabled() {
		return ""
	}
	logger := logutil.GetLogger(ctx).With(zap.String("spot_code", spotCode))
	ids, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		logger.Error("retrieval failed, falling back to ungrounded answer", zap.Error(err))
		return ""
	}
	if len(ids) == 0 {
		return ""
	}
	docs, err := a.docs.GetByIDs(ctx, ids)
	if err != nil {
		logger.Error("resolve retrieved docs failed, falling back to ungrounded answer", zap.Error(err))
		return ""
	}
	byID := make(map[int64]*model.KnowledgeDoc, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		doc, ok := byID[id]
		if !ok || strings.TrimSpace(doc.Text) == "" {
			continue
		}
		texts = append(texts, doc.Text)
	}
	logger.Debug("assembled retrieval context", zap.Int("requested", len(ids)), zap.Int("used", len(texts)))
	return strings.Join(texts, "\n\n")
}
