package translate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dorilab/dori/internal/ai"
)

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
	opts    []ai.GenerateOptions
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, opts ai.GenerateOptions) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	return f.reply, f.err
}

func TestIdentityShortcutSkipsBackend(t *testing.T) {
	gen := &fakeGenerator{}
	bridge := NewBridge(gen)
	ctx := context.Background()

	out, err := bridge.Translate(ctx, "hello", "en", "en")
	require.NoError(t, err)
	require.Equal(t, "hello", out)

	out, err = bridge.ToPivot(ctx, "what is this?", "en")
	require.NoError(t, err)
	require.Equal(t, "what is this?", out)

	out, err = bridge.FromPivot(ctx, "an answer", "en")
	require.NoError(t, err)
	require.Equal(t, "an answer", out)

	require.Zero(t, gen.calls)
}

func TestToPivotPromptShape(t *testing.T) {
	gen := &fakeGenerator{reply: "  When was the gate built?  "}
	bridge := NewBridge(gen)

	out, err := bridge.ToPivot(context.Background(), "문은 언제 지어졌나요?", "ko")
	require.NoError(t, err)
	require.Equal(t, "When was the gate built?", out)
	require.Equal(t, 1, gen.calls)
	require.Contains(t, gen.prompts[0], "from Korean to English")
	require.Contains(t, gen.prompts[0], "Do not answer the question.")
	require.Contains(t, gen.prompts[0], "문은 언제 지어졌나요?")
	require.Equal(t, float32(0.3), gen.opts[0].Temperature)
	require.Equal(t, 256, gen.opts[0].MaxTokens)
}

func TestFromPivotPromptShape(t *testing.T) {
	gen := &fakeGenerator{reply: "La porte a été restaurée en 2010."}
	bridge := NewBridge(gen)

	out, err := bridge.FromPivot(context.Background(), "The gate was restored in 2010.", "fr")
	require.NoError(t, err)
	require.Equal(t, "La porte a été restaurée en 2010.", out)
	require.Contains(t, gen.prompts[0], "from English to French")
	require.Contains(t, gen.prompts[0], "The gate was restored in 2010.")
}

func TestTranslatePropagatesBackendError(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("backend down")}
	bridge := NewBridge(gen)

	_, err := bridge.Translate(context.Background(), "hello", "en", "ja")
	require.Error(t, err)
}

func TestEmptyTextSkipsBackend(t *testing.T) {
	gen := &fakeGenerator{}
	bridge := NewBridge(gen)

	out, err := bridge.FromPivot(context.Background(), "   ", "ko")
	require.NoError(t, err)
	require.Equal(t, "   ", out)
	require.Zero(t, gen.calls)
}

func TestSupportedLanguages(t *testing.T) {
	for _, lang := range []string{"en", "ko", "ja", "zh", "fr", "es", "vi", "th"} {
		require.True(t, Supported(lang), lang)
	}
	require.False(t, Supported("de"))
	require.Equal(t, "Thai", LanguageName("th"))
	require.Equal(t, "xx", LanguageName("xx"))
}
