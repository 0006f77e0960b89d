package speech

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	clips [][]byte
	err   error
}

func (f *fakePlayer) Play(_ context.Context, audio []byte) error {
	f.clips = append(f.clips, audio)
	return f.err
}

func TestChunkTextShortPassthrough(t *testing.T) {
	require.Equal(t, []string{"short text"}, ChunkText("short text", 2000))
}

func TestChunkTextSplitsAtSentenceBoundaries(t *testing.T) {
	text := "First sentence is here. Second sentence follows! Third one asks? Fourth closes."
	chunks := ChunkText(text, 50)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		require.LessOrEqual(t, len(chunk), 50)
		require.NotEmpty(t, strings.TrimSpace(chunk))
	}
	require.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(strings.Fields(strings.Join(chunks, " ")), " "))
}

func TestChunkTextOversizedSentenceFallsBackToWords(t *testing.T) {
	text := strings.Repeat("word ", 40) + "end"
	chunks := ChunkText(text, 30)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		require.LessOrEqual(t, len(chunk), 30)
	}
}

func TestSpeakPlaysSynthesizedAudio(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		fmt.Fprint(w, "mp3-bytes")
	}))
	defer srv.Close()

	player := &fakePlayer{}
	syn := NewSynthesizer(SynthesizerConfig{APIKey: "test-key", BaseURL: srv.URL}, player)

	syn.Speak(context.Background(), "Welcome to the tour.", "en")
	require.Len(t, player.clips, 1)
	require.Equal(t, "mp3-bytes", string(player.clips[0]))
	require.Equal(t, "/v1/text-to-speech/"+defaultVoiceID, gotPath)
	require.Equal(t, "test-key", gotKey)
}

func TestSpeakUsesLanguageVoice(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, "audio")
	}))
	defer srv.Close()

	syn := NewSynthesizer(SynthesizerConfig{APIKey: "k", BaseURL: srv.URL}, &fakePlayer{})
	syn.Speak(context.Background(), "안녕하세요", "ko")
	require.Equal(t, "/v1/text-to-speech/"+defaultKoreanVoice, gotPath)
}

func TestSpeakSwallowsBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":{"status":"quota_exceeded"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	player := &fakePlayer{}
	syn := NewSynthesizer(SynthesizerConfig{APIKey: "k", BaseURL: srv.URL}, player)

	// Must not panic or surface an error; the utterance is simply skipped.
	syn.Speak(context.Background(), "This will not be spoken.", "en")
	require.Empty(t, player.clips)
}

func TestSpeakSwallowsPlayerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "audio")
	}))
	defer srv.Close()

	player := &fakePlayer{err: fmt.Errorf("device busy")}
	syn := NewSynthesizer(SynthesizerConfig{APIKey: "k", BaseURL: srv.URL}, player)
	syn.Speak(context.Background(), "Hello.", "en")
}

func TestSpeakChunksLongText(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		fmt.Fprint(w, "audio")
	}))
	defer srv.Close()

	player := &fakePlayer{}
	syn := NewSynthesizer(SynthesizerConfig{APIKey: "k", BaseURL: srv.URL, MaxChunkLen: 40}, player)
	syn.Speak(context.Background(), "A first long-ish sentence goes here. A second long-ish sentence goes here.", "en")
	require.Equal(t, 2, requests)
	require.Len(t, player.clips, 2)
}

func TestSpeakIgnoresEmptyText(t *testing.T) {
	syn := NewSynthesizer(SynthesizerConfig{APIKey: "k", BaseURL: "http://127.0.0.1:0"}, &fakePlayer{})
	syn.Speak(context.Background(), "   ", "en")
}
