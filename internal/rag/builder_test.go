package rag

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dorilab/dori/internal/ai"
	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/vecindex"
)

type fakeDocLister struct {
	docs []*model.KnowledgeDoc
}

func (f *fakeDocLister) ListByLanguage(ctx context.Context, language string) ([]*model.KnowledgeDoc, error) {
	return f.docs, nil
}

type mapEmbedder struct {
	vectors map[string][]float32
	tasks   []string
}

func (m *mapEmbedder) Embed(_ context.Context, text string, taskType string) ([]float32, error) {
	m.tasks = append(m.tasks, taskType)
	return m.vectors[text], nil
}

func (m *mapEmbedder) ModelName() string { return "map-embedder" }

func TestIndexBuilderBuildAndSave(t *testing.T) {
	lister := &fakeDocLister{docs: []*model.KnowledgeDoc{
		{ID: 1, Text: "the main gate"},
		{ID: 2, Text: "the throne hall"},
		{ID: 3, Text: "the banquet pavilion"},
	}}
	embedder := &mapEmbedder{vectors: map[string][]float32{
		"the main gate":        {1, 0, 0},
		"the throne hall":      {0, 1, 0},
		"the banquet pavilion": {0, 0, 1},
	}}
	builder, err := NewIndexBuilder(lister, embedder)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, builder.BuildAndSave(context.Background(), "en", path))

	index, err := vecindex.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, index.Len())
	require.Equal(t, int64(3), index.MaxID())
	require.Equal(t, []string{ai.TaskRetrievalDocument, ai.TaskRetrievalDocument, ai.TaskRetrievalDocument}, embedder.tasks)

	matches := index.Search([]float32{0, 1, 0}, 1)
	require.Len(t, matches, 1)
	require.Equal(t, int64(2), matches[0].ID)
}

func TestIndexBuilderEmptyCorpus(t *testing.T) {
	builder, err := NewIndexBuilder(&fakeDocLister{}, &mapEmbedder{})
	require.NoError(t, err)
	_, err = builder.Build(context.Background(), "en")
	require.Error(t, err)
}
