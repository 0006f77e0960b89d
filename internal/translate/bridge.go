package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/dorilab/dori/internal/ai"
)

// PivotLanguage is the language every question is answered in before being
// translated back to the visitor's language.
const PivotLanguage = "en"

var languageNames = map[string]string{
	"en": "English",
	"ko": "Korean",
	"ja": "Japanese",
	"zh": "Chinese",
	"fr": "French",
	"es": "Spanish",
	"vi": "Vietnamese",
	"th": "Thai",
}

// Supported reports whether lang is one of the tour languages.
func Supported(lang string) bool {
	_, ok := languageNames[lang]
	return ok
}

// LanguageName returns the English name of a language code, falling back to
// the code itself for unknown values.
func LanguageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return lang
}

// Bridge translates between the visitor's language and the pivot language
// using the completion backend. Every method applies the identity shortcut:
// equal source and target return the input untouched.
type Bridge struct {
	generator ai.IGenerator
}

func NewBridge(generator ai.IGenerator) *Bridge {
	return &Bridge{generator: generator}
}

// Translate converts general tour text (narration, prompts) between any two
// supported languages.
func (b *Bridge) Translate(ctx context.Context, text, src, tgt string) (string, error) {
	if src == tgt || strings.TrimSpace(text) == "" {
		return text, nil
	}
	prompt := fmt.Sprintf(
		"You are a professional multilingual tour guide translator.\n"+
			"Translate the following tour guide script from %s to %s.\n\n"+
			"TRANSLATION GUIDELINES:\n"+
			"- Translate naturally and fluently, as if speaking to a tourist\n"+
			"- Preserve all place names, proper nouns, and historical terms exactly\n"+
			"- Maintain the original tone and style (informative but friendly)\n"+
			"- Do not add explanations, comments, or extra sentences\n"+
			"- Keep the same sentence structure when possible\n"+
			"- Ensure the translation sounds natural in the target language\n\n"+
			"[Source Text]\n%s\n\n"+
			"[Natural Translation in %s]\n",
		LanguageName(src), LanguageName(tgt), text, LanguageName(tgt))
	return b.call(ctx, prompt)
}

// ToPivot translates a visitor question into the pivot language. The prompt
// explicitly forbids answering so the model does not jump ahead of the QA
// pipeline.
func (b *Bridge) ToPivot(ctx context.Context, question, src string) (string, error) {
	if src == PivotLanguage || strings.TrimSpace(question) == "" {
		return question, nil
	}
	prompt := fmt.Sprintf(
		"You are a translator assistant.\n"+
			"Translate the following user question from %s to English.\n"+
			"Keep the meaning exactly the same.\n"+
			"Do not answer the question. Output only the translated question.\n\n"+
			"[User Question]\n%s\n\n"+
			"[English Question]\n",
		LanguageName(src), question)
	return b.call(ctx, prompt)
}

// FromPivot translates a pivot-language answer into the visitor's language.
func (b *Bridge) FromPivot(ctx context.Context, answer, tgt string) (string, error) {
	if tgt == PivotLanguage || strings.TrimSpace(answer) == "" {
		return answer, nil
	}
	prompt := fmt.Sprintf(
		"You are a professional tour guide translator.\n"+
			"Translate the following answer from English to %s.\n\n"+
			"TRANSLATION GUIDELINES:\n"+
			"- Use a polite, friendly, and natural tone\n"+
			"- Preserve all place names, proper nouns, and historical terms exactly\n"+
			"- Keep the meaning and nuance exactly the same\n"+
			"- Make it sound natural in the target language\n"+
			"- Do not add extra sentences or explanations\n"+
			"- Maintain the same level of formality\n\n"+
			"[Answer in English]\n%s\n\n"+
			"[Natural Translation in %s]\n",
		LanguageName(tgt), answer, LanguageName(tgt))
	return b.call(ctx, prompt)
}

func (b *Bridge) call(ctx context.Context, prompt string) (string, error) {
	res, err := b.generator.Generate(ctx, prompt, ai.GenerateOptions{
		Temperature: 0.3,
		MaxTokens:   256,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res), nil
}
