package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeRecorder) Record(_ context.Context, _ float64) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

type fakeTranscriptionAPI struct {
	responses []openai.AudioResponse
	err       error
	calls     int
}

func (f *fakeTranscriptionAPI) CreateTranscription(_ context.Context, _ openai.AudioRequest) (openai.AudioResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.AudioResponse{}, f.err
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func verboseResponse(t *testing.T, text string, logprob float64) openai.AudioResponse {
	t.Helper()
	payload := fmt.Sprintf(`{"text": %q, "segments": [{"start": 0, "end": 2, "text": %q, "avg_logprob": %g}]}`,
		text, text, logprob)
	var resp openai.AudioResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return resp
}

func TestIsValidTranscript(t *testing.T) {
	require.True(t, IsValidTranscript("when was it built"))
	require.True(t, IsValidTranscript("광화문은 언제 지어졌나요"))
	require.False(t, IsValidTranscript("a"))
	require.False(t, IsValidTranscript("   "))
	require.False(t, IsValidTranscript("aaaaa"))
	require.False(t, IsValidTranscript("ssssso what"))
	require.False(t, IsValidTranscript("?!... !!"))
}

func TestLooksLikeReasonableText(t *testing.T) {
	require.True(t, LooksLikeReasonableText("what is this building"))
	require.True(t, LooksLikeReasonableText("tell"))
	require.True(t, LooksLikeReasonableText("this is about the palace"))
	require.True(t, LooksLikeReasonableText("big old gate here"))
	require.False(t, LooksLikeReasonableText("zz"))
	require.False(t, LooksLikeReasonableText("xylophone"))
	require.False(t, LooksLikeReasonableText("pneumonoultramicroscopic volcanoconiosis supercalifragilistic"))
}

func TestWeightedAvgLogprob(t *testing.T) {
	require.Equal(t, -1.0, WeightedAvgLogprob(nil))
	got := WeightedAvgLogprob([]SegmentScore{
		{Start: 0, End: 1, AvgLogprob: -0.2},
		{Start: 1, End: 4, AvgLogprob: -1.0},
	})
	require.InDelta(t, -0.8, got, 1e-9)
}

func TestListenAcceptsConfidentTranscript(t *testing.T) {
	api := &fakeTranscriptionAPI{responses: []openai.AudioResponse{
		verboseResponse(t, "When was the gate built?", -0.3),
	}}
	rec := &fakeRecorder{audio: []byte{1, 2, 3}}
	tr := NewTranscriber(api, rec, TranscriberConfig{})

	got := tr.Listen(context.Background(), "en", 10)
	require.Equal(t, "When was the gate built?", got)
	require.Equal(t, 1, api.calls)
}

func TestListenRejectsLowConfidenceGibberish(t *testing.T) {
	api := &fakeTranscriptionAPI{responses: []openai.AudioResponse{
		verboseResponse(t, "zzkvwqpxl mnbvcxzq", -2.5),
	}}
	rec := &fakeRecorder{audio: []byte{1}}
	tr := NewTranscriber(api, rec, TranscriberConfig{})

	require.Equal(t, "", tr.Listen(context.Background(), "en", 10))
}

func TestListenAcceptsLowConfidenceButReasonable(t *testing.T) {
	api := &fakeTranscriptionAPI{responses: []openai.AudioResponse{
		verboseResponse(t, "what is that roof", -2.0),
	}}
	rec := &fakeRecorder{audio: []byte{1}}
	tr := NewTranscriber(api, rec, TranscriberConfig{})

	require.Equal(t, "what is that roof", tr.Listen(context.Background(), "en", 10))
}

func TestListenRetriesOnce(t *testing.T) {
	api := &fakeTranscriptionAPI{responses: []openai.AudioResponse{
		verboseResponse(t, "mmmmm", -2.5),
		verboseResponse(t, "Who built this palace?", -0.4),
	}}
	rec := &fakeRecorder{audio: []byte{1}}
	tr := NewTranscriber(api, rec, TranscriberConfig{MaxRetries: 1})

	require.Equal(t, "Who built this palace?", tr.Listen(context.Background(), "en", 10))
	require.Equal(t, 2, rec.calls)
}

func TestListenTreatsAPIErrorAsSilence(t *testing.T) {
	api := &fakeTranscriptionAPI{err: fmt.Errorf("backend down")}
	rec := &fakeRecorder{audio: []byte{1}}
	tr := NewTranscriber(api, rec, TranscriberConfig{})

	require.Equal(t, "", tr.Listen(context.Background(), "en", 10))
}

func TestListenTreatsEmptyAudioAsSilence(t *testing.T) {
	api := &fakeTranscriptionAPI{responses: []openai.AudioResponse{verboseResponse(t, "never used", -0.1)}}
	rec := &fakeRecorder{audio: nil}
	tr := NewTranscriber(api, rec, TranscriberConfig{})

	require.Equal(t, "", tr.Listen(context.Background(), "en", 10))
	require.Zero(t, api.calls)
}
