// Package types provides type definitions for structured data used throughout the ats-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordResult holds keywords extracted from a job description, split into categories.
// A token appears in at most one category and at most once within it.
type KeywordResult struct {
	Tools  []string `json:"tools"`
	Skills []string `json:"skills"`
	Domain []string `json:"domain"`

	// Frequencies records how often each kept keyword occurred in the source text
	Frequencies map[string]int `json:"frequencies,omitempty"`
}

// NewKeywordResult returns a result with empty (non-nil) buckets
func NewKeywordResult() *KeywordResult {
	return &KeywordResult{
		Tools:       []string{},
		Skills:      []string{},
		Domain:      []string{},
		Frequencies: map[string]int{},
	}
}

// All returns tools, skills and domain keywords flattened into one list.
// Duplicates across buckets keep their first occurrence.
func (k *KeywordResult) All() []string {
	if k == nil {
		return []string{}
	}
	all := make([]string, 0, len(k.Tools)+len(k.Skills)+len(k.Domain))
	seen := make(map[string]bool, cap(all))
	for _, bucket := range [][]string{k.Tools, k.Skills, k.Domain} {
		for _, kw := range bucket {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			all = append(all, kw)
		}
	}
	return all
}

// Len returns the number of distinct keywords across all buckets
func (k *KeywordResult) Len() int {
	return len(k.All())
}

// MatchResult is the coverage of a keyword set against a target text
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"` // 0-100
}
