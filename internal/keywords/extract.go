// Package keywords extracts categorized ATS keywords from job descriptions and
// measures how well a resume covers them.
package keywords

import (
	"sort"

	"github.com/jonathan/ats-scanner/internal/lexicon"
	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// MinTokenLength is the shortest token considered for extraction
	MinTokenLength = 3

	// Uncategorized tokens become domain keywords when they repeat and are long enough
	fallbackMinFrequency = 2
	fallbackMinLength    = 5
)

// Extractor turns text into a categorized KeywordResult using a lexicon
type Extractor struct {
	lex  *lexicon.Lexicon
	mode parsing.Mode
}

// NewExtractor creates an extractor. A nil lexicon uses lexicon.Default().
func NewExtractor(lex *lexicon.Lexicon, mode parsing.Mode) *Extractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Extractor{lex: lex, mode: mode}
}

// Extract extracts keywords from text with the default lexicon and tokenizer
func Extract(text string) *types.KeywordResult {
	return NewExtractor(nil, parsing.ModeAlphanumeric).Extract(text)
}

// Extract classifies the frequent, non-stopword tokens of text into tools,
// skills and domain buckets. Buckets are ordered by descending frequency; ties
// keep the order in which tokens first appeared.
func (e *Extractor) Extract(text string) *types.KeywordResult {
	freq := make(map[string]int)
	var order []string

	for _, tok := range e.mode.Tokenize(text) {
		if len(tok) < MinTokenLength || e.lex.IsStopword(tok) {
			continue
		}
		if freq[tok] == 0 {
			order = append(order, tok)
		}
		freq[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	result := types.NewKeywordResult()
	for _, tok := range order {
		switch {
		case e.lex.IsTool(tok):
			result.Tools = append(result.Tools, tok)
		case e.lex.IsSkill(tok):
			result.Skills = append(result.Skills, tok)
		case e.lex.IsDomainSeed(tok):
			result.Domain = append(result.Domain, tok)
		case freq[tok] >= fallbackMinFrequency && len(tok) >= fallbackMinLength:
			result.Domain = append(result.Domain, tok)
		default:
			continue
		}
		result.Frequencies[tok] = freq[tok]
	}

	return result
}
