package rag

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/dorilab/dori/internal/ai"
)

// Apology strings returned in place of an answer when the completion
// backend fails. Always English; the language bridge translates them like
// any other answer.
const (
	apologyAuth       = "Sorry, I cannot reach my knowledge service right now because of an authorization problem."
	apologyRateLimit  = "Sorry, I am getting too many questions at the moment. Please ask me again in a little while."
	apologyConnection = "Sorry, I am having trouble connecting to my knowledge service. Please try again shortly."
	apologyGeneric    = "Sorry, something went wrong while I was thinking about your question."
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s*`)

// TruncateToTwoSentences keeps at most the first two sentences of text,
// splitting on terminal punctuation runs. The transform is idempotent.
func TruncateToTwoSentences(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	locs := sentenceBoundary.FindAllStringIndex(trimmed, -1)
	kept := make([]string, 0, 2)
	start := 0
	for _, loc := range locs {
		sentence := strings.TrimSpace(trimmed[start:loc[1]])
		if sentence != "" {
			kept = append(kept, sentence)
		}
		start = loc[1]
		if len(kept) == 2 {
			return strings.Join(kept, " ")
		}
	}
	if rest := strings.TrimSpace(trimmed[start:]); rest != "" {
		kept = append(kept, rest)
	}
	if len(kept) == 0 {
		return trimmed
	}
	if len(kept) > 2 {
		kept = kept[:2]
	}
	return strings.Join(kept, " ")
}

// Answerer produces the short English answer for a visitor question:
// optional retrieval context, prompt build, completion, truncation. Backend
// failures become apologies so the dialogue never crashes on a dead API.
type Answerer struct {
	assembler *ContextAssembler
	generator ai.IGenerator
	cache     *expirable.LRU[string, string]
}

func NewAnswerer(assembler *ContextAssembler, generator ai.IGenerator, cacheSize int, cacheTTL time.Duration) *Answerer {
	a := &Answerer{assembler: assembler, generator: generator}
	if cacheSize > 0 && cacheTTL > 0 {
		a.cache = expirable.NewLRU[string, string](cacheSize, nil, cacheTTL)
	}
	return a
}

// Answer generates a two-sentence-max English answer for a question already
// translated into English. It never returns an error; failures degrade to
// an apology string.
func (a *Answerer) Answer(ctx context.Context, question string, spotCode string) string {
	qaContext := ""
	if a.assembler != nil {
		qaContext = a.assembler.BuildContext(ctx, question, spotCode)
	}
	return a.generate(ctx, question, qaContext)
}

// AnswerUngrounded skips retrieval regardless of the global toggle. The debug
// API uses it to compare grounded and ungrounded answers side by side.
func (a *Answerer) AnswerUngrounded(ctx context.Context, question string) string {
	return a.generate(ctx, question, "")
}

func (a *Answerer) generate(ctx context.Context, question string, qaContext string) string {
	logger := logutil.GetLogger(ctx)
	cacheKey := answerCacheKey(question, qaContext)
	if a.cache != nil {
		if cached, ok := a.cache.Get(cacheKey); ok {
			logger.Debug("answer cache hit")
			return cached
		}
	}

	prompt := BuildQAPrompt(question, qaContext)
	raw, err := a.generator.Generate(ctx, prompt, ai.GenerateOptions{
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		logger.Error("answer generation failed", zap.Error(err))
		return apologyFor(err)
	}
	answer := TruncateToTwoSentences(strings.TrimSpace(raw))
	if a.cache != nil && answer != "" {
		a.cache.Add(cacheKey, answer)
	}
	logger.Debug("answer generated",
		zap.Bool("grounded", qaContext != ""),
		zap.Int("answer_len", len(answer)))
	return answer
}

func apologyFor(err error) string {
	switch {
	case errors.Is(err, ai.ErrAuth):
		return apologyAuth
	case errors.Is(err, ai.ErrRateLimited):
		return apologyRateLimit
	case errors.Is(err, ai.ErrConnection), errors.Is(err, ai.ErrUnavailable):
		return apologyConnection
	default:
		return apologyGeneric
	}
}

func answerCacheKey(question, qaContext string) string {
	hash := sha256.Sum256([]byte(question + "\x00" + qaContext))
	return hex.EncodeToString(hash[:])
}
