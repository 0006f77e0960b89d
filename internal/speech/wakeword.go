package speech

import (
	"strings"

	"github.com/dorilab/dori/internal/pkg/textdist"
)

// Per-language trigger phrases. The detector also fuzzy-matches single words
// against the robot's name so slightly garbled transcripts still wake it.
var wakePhrases = map[string][]string{
	"ko": {"도리야", "헤이 도리", "도리"},
	"en": {"hey dori", "hi dori", "hello dori", "dori"},
	"zh": {"你好多里", "多里"},
	"ja": {"ヘイドリ", "ドリ"},
	"fr": {"salut dori", "dori"},
	"es": {"hola dori", "dori"},
	"vi": {"xin chào dori", "dori"},
	"th": {"สวัสดีโดริ", "โดริ"},
}

var wakeNames = []string{"dori", "도리", "ドリ", "多里", "โดริ"}

const wakeFuzzyMaxDistance = 1

// WakeDetector matches transcripts against the trigger vocabulary.
type WakeDetector struct{}

func NewWakeDetector() *WakeDetector {
	return &WakeDetector{}
}

// Match reports whether the transcript contains a wake phrase for the given
// language, falling back to the English phrase set for unknown languages.
func (d *WakeDetector) Match(text string, lang string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	phrases := wakePhrases[lang]
	if phrases == nil {
		phrases = wakePhrases["en"]
	}
	for _, phrase := range phrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	// Fuzzy pass: a word one edit away from the robot's name counts.
	for _, word := range strings.Fields(normalized) {
		word = strings.Trim(word, ".,!?~")
		for _, name := range wakeNames {
			if len([]rune(word)) >= 2 && textdist.Distance(word, name) <= wakeFuzzyMaxDistance {
				return true
			}
		}
	}
	return false
}
