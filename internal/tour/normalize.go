package tour

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dorilab/dori/internal/pkg/textdist"
)

// Palace proper nouns with the mispronunciations Whisper commonly produces.
var palaceProperNouns = map[string][]string{
	"gwanghwamun":   {"gwanghwamun", "gwanghwa mun", "gwang hwa mun", "kwanghwamun", "kwanghwa mun"},
	"heungnyemun":   {"heungnyemun", "heung nye mun", "heungnye mun", "hungnyemun", "hung nye mun"},
	"geunjeongmun":  {"geunjeongmun", "geun jeong mun", "geunjeong mun", "keunjeongmun", "keun jeong mun"},
	"geunjeongjeon": {"geunjeongjeon", "geun jeong jeon", "geunjeong jeon", "keunjeongjeon", "keun jeong jeon"},
	"sujeongjeon":   {"sujeongjeon", "su jeong jeon", "sujeong jeon"},
	"gyeonghoeru":   {"gyeonghoeru", "gyeong hoe ru", "gyeonghoe ru", "kyeonghoeru", "kyeong hoe ru"},
	"gyeongbokgung": {"gyeongbokgung", "gyeongbok gung", "gyeong bok gung", "kyeongbokgung", "kyeongbok gung"},
}

const (
	fuzzyMaxDistance   = 2
	fuzzyMinWordRunes  = 4
	fuzzyMaxLengthDiff = 2
)

var questionWordPattern = regexp.MustCompile(`[\pL\pN]+`)

// NounNormalizer corrects mispronounced palace proper nouns in question
// text before translation, so retrieval sees canonical names. A reverse
// index from variant to canonical form is built once; lookup is an exact
// substring pass followed by a bounded edit-distance scan over words.
type NounNormalizer struct {
	variantToCanonical map[string]string
	variants           []string
}

func NewNounNormalizer() *NounNormalizer {
	n := &NounNormalizer{variantToCanonical: make(map[string]string)}
	canonicals := make([]string, 0, len(palaceProperNouns))
	for canonical := range palaceProperNouns {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)
	for _, canonical := range canonicals {
		for _, variant := range palaceProperNouns[canonical] {
			if _, seen := n.variantToCanonical[variant]; seen {
				continue
			}
			n.variantToCanonical[variant] = canonical
			n.variants = append(n.variants, variant)
		}
	}
	return n
}

// Normalize lowercases the question and replaces recognized proper-noun
// variants with their canonical spelling. Text without palace names passes
// through (lowercased) untouched.
func (n *NounNormalizer) Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return normalized
	}
	for _, variant := range n.variants {
		if !strings.Contains(normalized, variant) {
			continue
		}
		normalized = strings.ReplaceAll(normalized, variant, n.variantToCanonical[variant])
	}
	for _, word := range questionWordPattern.FindAllString(normalized, -1) {
		if len([]rune(word)) < fuzzyMinWordRunes {
			continue
		}
		if _, exact := n.variantToCanonical[word]; exact {
			continue
		}
		if canonical, ok := n.fuzzyLookup(word); ok {
			pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
			normalized = pattern.ReplaceAllString(normalized, canonical)
		}
	}
	return normalized
}

func (n *NounNormalizer) fuzzyLookup(word string) (string, bool) {
	wordLen := len([]rune(word))
	for _, variant := range n.variants {
		variantLen := len([]rune(variant))
		diff := wordLen - variantLen
		if diff < -fuzzyMaxLengthDiff || diff > fuzzyMaxLengthDiff {
			continue
		}
		if textdist.Distance(word, variant) <= fuzzyMaxDistance {
			return n.variantToCanonical[variant], true
		}
	}
	return "", false
}
