package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	defaultTTSBaseURL   = "https://api.elevenlabs.io"
	defaultTTSModel     = "eleven_multilingual_v2"
	defaultMaxChunkLen  = 2000
	interChunkPause     = 300 * time.Millisecond
	defaultVoiceID      = "nBoLwpO4PAjQaQwVKPI1"
	defaultKoreanVoice  = "uyVNoMrnUku1dZyVEXwD"
	synthesisReqTimeout = 30 * time.Second
)

var chunkBoundary = regexp.MustCompile(`[.!?]\s+`)

type SynthesizerConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	MaxChunkLen  int
	Voices       map[string]string
	DefaultVoice string
}

// Synthesizer speaks text through the ElevenLabs API. Every failure on this
// path is swallowed: a tour with an occasional missing utterance beats a
// tour that crashes because the speech backend had a bad minute.
type Synthesizer struct {
	cfg    SynthesizerConfig
	client *http.Client
	player Player
}

func NewSynthesizer(cfg SynthesizerConfig, player Player) *Synthesizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultTTSBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultTTSModel
	}
	if cfg.MaxChunkLen <= 0 {
		cfg.MaxChunkLen = defaultMaxChunkLen
	}
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = defaultVoiceID
	}
	if cfg.Voices == nil {
		cfg.Voices = map[string]string{"ko": defaultKoreanVoice}
	}
	return &Synthesizer{
		cfg:    cfg,
		client: &http.Client{Timeout: synthesisReqTimeout},
		player: player,
	}
}

// Speak synthesizes and plays text to completion. Text longer than the
// backend's safe request size is split at sentence boundaries and played
// chunk by chunk with a short pause in between.
func (s *Synthesizer) Speak(ctx context.Context, text string, lang string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	chunks := ChunkText(text, s.cfg.MaxChunkLen)
	for i, chunk := range chunks {
		if i > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(interChunkPause):
			}
		}
		s.speakChunk(ctx, chunk, lang)
	}
}

func (s *Synthesizer) speakChunk(ctx context.Context, text string, lang string) {
	logger := logutil.GetLogger(ctx).With(zap.String("lang", lang))
	audio, err := s.synthesize(ctx, text, lang)
	if err != nil {
		logger.Warn("speech synthesis failed, skipping utterance", zap.Error(err))
		return
	}
	if s.player == nil {
		return
	}
	if err := s.player.Play(ctx, audio); err != nil {
		logger.Warn("audio playback failed, skipping utterance", zap.Error(err))
		return
	}
	logger.Debug("spoke", zap.Int("chars", len(text)))
}

func (s *Synthesizer) synthesize(ctx context.Context, text string, lang string) ([]byte, error) {
	voiceID := s.cfg.Voices[lang]
	if voiceID == "" {
		voiceID = s.cfg.DefaultVoice
	}
	payload := map[string]interface{}{
		"text":     text,
		"model_id": s.cfg.Model,
		"voice_settings": map[string]interface{}{
			"stability":         0.5,
			"similarity_boost":  0.75,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v1/text-to-speech/%s", strings.TrimRight(s.cfg.BaseURL, "/"), voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("synthesis returned status %d: %s", resp.StatusCode, string(snippet))
	}
	return io.ReadAll(resp.Body)
}

// ChunkText splits text into pieces of at most maxChars, preferring sentence
// boundaries and falling back to word boundaries for oversized sentences.
func ChunkText(text string, maxChars int) []string {
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}
	var chunks []string
	current := ""
	for _, sentence := range splitSentences(text) {
		if len(sentence) > maxChars {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
				current = ""
			}
			head, tail := splitWords(sentence, maxChars)
			chunks = append(chunks, head...)
			current = tail
			continue
		}
		if len(current)+len(sentence) > maxChars {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			current = sentence
		} else {
			current += sentence
		}
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

func splitSentences(text string) []string {
	locs := chunkBoundary.FindAllStringIndex(text, -1)
	var parts []string
	start := 0
	for _, loc := range locs {
		parts = append(parts, text[start:loc[1]])
		start = loc[1]
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

func splitWords(sentence string, maxChars int) (full []string, rest string) {
	current := ""
	for _, word := range strings.Fields(sentence) {
		if current != "" && len(current)+1+len(word) > maxChars {
			full = append(full, current)
			current = word
			continue
		}
		if current == "" {
			current = word
		} else {
			current += " " + word
		}
	}
	return full, current
}
