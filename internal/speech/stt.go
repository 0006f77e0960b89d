package speech

import (
	"bytes"
	"context"
	"strings"
	"time"
	"unicode"

	openai "github.com/sashabaranov/go-openai"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	minTranscriptLength  = 2
	maxConsecutiveRunes  = 3
	defaultMinAvgLogprob = -1.2
)

// transcriptionAPI is the slice of the openai client the transcriber needs;
// tests substitute a fake.
type transcriptionAPI interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type TranscriberConfig struct {
	Model         string
	MinAvgLogprob float64
	MaxRetries    int
}

// Transcriber records a fixed-duration clip, transcribes it with a language
// hint and gates the result on confidence and a gibberish filter. A rejected
// or empty transcript is reported as "heard nothing", never as an error the
// dialogue has to handle.
type Transcriber struct {
	client   transcriptionAPI
	recorder Recorder
	cfg      TranscriberConfig
}

func NewTranscriber(client transcriptionAPI, recorder Recorder, cfg TranscriberConfig) *Transcriber {
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}
	if cfg.MinAvgLogprob == 0 {
		cfg.MinAvgLogprob = defaultMinAvgLogprob
	}
	return &Transcriber{client: client, recorder: recorder, cfg: cfg}
}

// Listen records for the given duration and returns the accepted transcript,
// or "" when nothing usable was heard. One retry round is attempted when the
// first clip transcribes to rejected garbage.
func (t *Transcriber) Listen(ctx context.Context, lang string, seconds float64) string {
	logger := logutil.GetLogger(ctx).With(zap.String("lang", lang))
	for attempt := 0; attempt <= t.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			logger.Debug("retrying transcription", zap.Int("attempt", attempt+1))
			select {
			case <-ctx.Done():
				return ""
			case <-time.After(500 * time.Millisecond):
			}
		}
		audio, err := t.recorder.Record(ctx, seconds)
		if err != nil {
			logger.Warn("audio capture failed", zap.Error(err))
			return ""
		}
		if len(audio) == 0 {
			logger.Debug("no audio captured")
			return ""
		}
		if text := t.transcribe(ctx, audio, lang); text != "" {
			return text
		}
	}
	logger.Debug("no valid transcription after retries")
	return ""
}

func (t *Transcriber) transcribe(ctx context.Context, audio []byte, lang string) string {
	logger := logutil.GetLogger(ctx)
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.cfg.Model,
		FilePath: "clip.wav",
		Reader:   bytes.NewReader(audio),
		Language: lang,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		logger.Warn("transcription request failed", zap.Error(err))
		return ""
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return ""
	}
	if !IsValidTranscript(text) {
		logger.Debug("rejected transcript (invalid format)", zap.String("text", text))
		return ""
	}
	scores := make([]SegmentScore, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		scores = append(scores, SegmentScore{Start: seg.Start, End: seg.End, AvgLogprob: seg.AvgLogprob})
	}
	confidence := WeightedAvgLogprob(scores)
	if confidence < t.cfg.MinAvgLogprob {
		if LooksLikeReasonableText(text) {
			logger.Debug("accepted low-confidence transcript on heuristics",
				zap.String("text", text), zap.Float64("avg_logprob", confidence))
			return text
		}
		logger.Debug("rejected transcript (low confidence)",
			zap.String("text", text), zap.Float64("avg_logprob", confidence),
			zap.Float64("threshold", t.cfg.MinAvgLogprob))
		return ""
	}
	logger.Debug("transcribed", zap.String("text", text), zap.Float64("avg_logprob", confidence))
	return text
}

// SegmentScore is one transcription segment's confidence window.
type SegmentScore struct {
	Start      float64
	End        float64
	AvgLogprob float64
}

// WeightedAvgLogprob averages per-segment log probabilities weighted by
// segment duration. No segments means low confidence, not high.
func WeightedAvgLogprob(segments []SegmentScore) float64 {
	var total, duration float64
	for _, seg := range segments {
		d := seg.End - seg.Start
		if d > 0 {
			total += seg.AvgLogprob * d
			duration += d
		}
	}
	if duration == 0 {
		return -1.0
	}
	return total / duration
}

// IsValidTranscript filters obvious gibberish: too short, long runs of one
// repeated rune, or no letters/digits at all.
func IsValidTranscript(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < minTranscriptLength {
		return false
	}
	var last rune
	run := 0
	hasAlnum := false
	for _, r := range trimmed {
		if r == last {
			run++
			if run > maxConsecutiveRunes {
				return false
			}
		} else {
			last = r
			run = 1
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasAlnum = true
		}
	}
	return hasAlnum
}

var questionWords = map[string]struct{}{
	"what": {}, "when": {}, "where": {}, "who": {}, "how": {},
	"why": {}, "which": {}, "whose": {}, "whom": {},
}

var commonWords = map[string]struct{}{
	"the": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"can": {}, "could": {}, "would": {}, "should": {},
	"about": {}, "with": {}, "from": {}, "for": {},
}

var questionStarters = []string{
	"what", "when", "where", "who", "how", "why", "tell", "explain", "describe",
}

// LooksLikeReasonableText is the secondary acceptance path for transcripts
// below the confidence threshold: real questions usually contain question
// words, common function words, or at least plausible word lengths.
func LooksLikeReasonableText(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if len([]rune(trimmed)) < 3 {
		return false
	}
	words := strings.Fields(trimmed)
	if len(words) < 2 {
		for _, starter := range questionStarters {
			if strings.HasPrefix(trimmed, starter) {
				return true
			}
		}
		return false
	}
	common := 0
	for _, word := range words {
		if _, ok := questionWords[word]; ok {
			return true
		}
		if _, ok := commonWords[word]; ok {
			common++
		}
	}
	if common >= 2 {
		return true
	}
	return float64(len(trimmed))/float64(len(words)) < 8
}
