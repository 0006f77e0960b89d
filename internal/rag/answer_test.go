package rag

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dorilab/dori/internal/ai"
	"github.com/dorilab/dori/internal/model"
	"github.com/dorilab/dori/internal/vecindex"
)

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ ai.GenerateOptions) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string, _ string) ([]float32, error) {
	f.calls++
	return f.vec, f.err
}

func (f *fakeEmbedder) ModelName() string { return "fake-embedder" }

type fakeDocStore struct {
	docs map[int64]*model.KnowledgeDoc
	err  error
}

func (f *fakeDocStore) GetByIDs(_ context.Context, ids []int64) ([]*model.KnowledgeDoc, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.KnowledgeDoc
	// Return in reverse order to prove the assembler restores ranking order.
	for i := len(ids) - 1; i >= 0; i-- {
		if doc, ok := f.docs[ids[i]]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func TestTruncateToTwoSentences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"One. Two. Three. Four.", "One. Two."},
		{"Only one sentence.", "Only one sentence."},
		{"No terminal punctuation", "No terminal punctuation"},
		{"First! Second? Third.", "First! Second?"},
		{"  Leading space. And more. Extra. ", "Leading space. And more."},
		{"", ""},
		{"   ", "   "},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, TruncateToTwoSentences(tc.in), "input %q", tc.in)
	}
}

func TestTruncateIsIdempotent(t *testing.T) {
	inputs := []string{
		"One. Two. Three.",
		"Gwanghwamun was restored in 2010! It is the main gate. Visitors love it.",
		"No punctuation at all",
		"Trailing fragment. then more text without end",
		"",
	}
	for _, in := range inputs {
		once := TruncateToTwoSentences(in)
		require.Equal(t, once, TruncateToTwoSentences(once), "input %q", in)
	}
}

func TestAnswerGroundedPath(t *testing.T) {
	idx, err := vecindex.Build(2, []vecindex.Entry{
		{ID: 1, Vector: []float32{1, 0}},
		{ID: 2, Vector: []float32{0, 1}},
	})
	require.NoError(t, err)

	emb := &fakeEmbedder{vec: []float32{1, 0}}
	retriever, err := NewRetriever(idx, emb, 2)
	require.NoError(t, err)

	docs := &fakeDocStore{docs: map[int64]*model.KnowledgeDoc{
		1: {ID: 1, Text: "Gwanghwamun was restored in 2010."},
		2: {ID: 2, Text: "It is the main gate of Gyeongbokgung."},
	}}
	assembler := NewContextAssembler(true, retriever, docs)

	gen := &fakeGenerator{reply: "Gwanghwamun was restored in 2010. It is the palace's main gate. Extra sentence here."}
	answerer := NewAnswerer(assembler, gen, 0, 0)

	answer := answerer.Answer(context.Background(), "When was Gwanghwamun restored?", "gwanghwamun")
	require.Equal(t, "Gwanghwamun was restored in 2010. It is the palace's main gate.", answer)
	require.Equal(t, 1, gen.calls)

	// The prompt carries the retrieved text in ranking order.
	require.Contains(t, gen.prompts[0], "Use ONLY the given context")
	require.Contains(t, gen.prompts[0], "Gwanghwamun was restored in 2010.\n\nIt is the main gate of Gyeongbokgung.")
}

func TestAnswerDisabledRetrievalSkipsEmbedding(t *testing.T) {
	idx, err := vecindex.Build(2, []vecindex.Entry{{ID: 1, Vector: []float32{1, 0}}})
	require.NoError(t, err)
	emb := &fakeEmbedder{vec: []float32{1, 0}}
	retriever, err := NewRetriever(idx, emb, 2)
	require.NoError(t, err)

	assembler := NewContextAssembler(false, retriever, &fakeDocStore{})
	gen := &fakeGenerator{reply: "An ungrounded answer."}
	answerer := NewAnswerer(assembler, gen, 0, 0)

	answer := answerer.Answer(context.Background(), "Any question?", "")
	require.Equal(t, "An ungrounded answer.", answer)
	require.Zero(t, emb.calls)
	require.NotContains(t, gen.prompts[0], "[Context]")
}

func TestAnswerRetrievalFailureFallsBackUngrounded(t *testing.T) {
	idx, err := vecindex.Build(2, []vecindex.Entry{{ID: 1, Vector: []float32{1, 0}}})
	require.NoError(t, err)
	emb := &fakeEmbedder{err: fmt.Errorf("embedding backend down")}
	retriever, err := NewRetriever(idx, emb, 2)
	require.NoError(t, err)

	assembler := NewContextAssembler(true, retriever, &fakeDocStore{})
	gen := &fakeGenerator{reply: "Still answered."}
	answerer := NewAnswerer(assembler, gen, 0, 0)

	answer := answerer.Answer(context.Background(), "Any question?", "")
	require.Equal(t, "Still answered.", answer)
	require.NotContains(t, gen.prompts[0], "[Context]")
}

func TestAnswerDocStoreFailureFallsBackUngrounded(t *testing.T) {
	idx, err := vecindex.Build(2, []vecindex.Entry{{ID: 1, Vector: []float32{1, 0}}})
	require.NoError(t, err)
	retriever, err := NewRetriever(idx, &fakeEmbedder{vec: []float32{1, 0}}, 2)
	require.NoError(t, err)

	assembler := NewContextAssembler(true, retriever, &fakeDocStore{err: fmt.Errorf("db down")})
	gen := &fakeGenerator{reply: "Still answered."}
	answerer := NewAnswerer(assembler, gen, 0, 0)

	answer := answerer.Answer(context.Background(), "Any question?", "")
	require.Equal(t, "Still answered.", answer)
	require.NotContains(t, gen.prompts[0], "[Context]")
}

func TestAnswerApologyPerFailureClass(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrapped: %w", ai.ErrAuth), apologyAuth},
		{fmt.Errorf("wrapped: %w", ai.ErrRateLimited), apologyRateLimit},
		{fmt.Errorf("wrapped: %w", ai.ErrConnection), apologyConnection},
		{ai.ErrUnavailable, apologyConnection},
		{fmt.Errorf("boom"), apologyGeneric},
	}
	for _, tc := range cases {
		gen := &fakeGenerator{err: tc.err}
		answerer := NewAnswerer(nil, gen, 0, 0)
		require.Equal(t, tc.want, answerer.Answer(context.Background(), "q", ""))
	}
}

func TestAnswerCacheAvoidsSecondGeneration(t *testing.T) {
	gen := &fakeGenerator{reply: "Cached answer."}
	answerer := NewAnswerer(nil, gen, 16, time.Minute)

	first := answerer.Answer(context.Background(), "same question", "")
	second := answerer.Answer(context.Background(), "same question", "")
	require.Equal(t, first, second)
	require.Equal(t, 1, gen.calls)
}
