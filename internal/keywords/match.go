package keywords

import (
	"math"

	"github.com/jonathan/ats-scanner/internal/parsing"
	"github.com/jonathan/ats-scanner/internal/types"
)

// Match checks which keywords appear as whole words in target using the alphanumeric tokenizer
func Match(keywords *types.KeywordResult, target string) *types.MatchResult {
	return MatchWith(keywords, target, parsing.ModeAlphanumeric)
}

// MatchWith checks which keywords appear as whole words in target.
// Matched and missing keep the flattened keyword order: tools, skills, then domain.
func MatchWith(keywords *types.KeywordResult, target string, mode parsing.Mode) *types.MatchResult {
	targetWords := parsing.TokenSet(target, mode.Tokenize)

	result := &types.MatchResult{
		Matched: []string{},
		Missing: []string{},
	}
	for _, kw := range keywords.All() {
		if targetWords[kw] {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	result.Score = CoverageScore(len(result.Matched), len(result.Missing))
	return result
}

// CoverageScore returns round(100 * matched / (matched + missing)), or 0 when both are zero
func CoverageScore(matched, missing int) int {
	total := matched + missing
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}
