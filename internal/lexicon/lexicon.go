// Package lexicon provides the word lists used to classify resume and job description tokens.
// A Lexicon is immutable once built and safe to share between goroutines.
package lexicon

import (
	"sort"
	"strings"
	"sync"
)

// Data is the serializable form of a lexicon, used for JSON overrides.
// When Replace is true, every non-nil list replaces the default list instead of extending it.
type Data struct {
	Replace     bool     `json:"replace,omitempty"`
	Stopwords   []string `json:"stopwords,omitempty"`
	Tools       []string `json:"tools,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Domain      []string `json:"domain,omitempty"`
	StrongVerbs []string `json:"strong_verbs,omitempty"`
	WeakOpeners []string `json:"weak_openers,omitempty"`
}

// Lexicon holds the stopword, category and bullet-phrasing sets
type Lexicon struct {
	stopwords map[string]bool
	tools     map[string]bool
	skills    map[string]bool
	domain    map[string]bool

	strongVerbs []string
	weakOpeners []string
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the built-in lexicon. It is built once per process.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex = New(DefaultData())
	})
	return defaultLex
}

// DefaultData returns a copy of the built-in word lists
func DefaultData() Data {
	return Data{
		Stopwords:   clone(defaultStopwords),
		Tools:       clone(defaultTools),
		Skills:      clone(defaultSkills),
		Domain:      clone(defaultDomain),
		StrongVerbs: clone(defaultStrongVerbs),
		WeakOpeners: clone(defaultWeakOpeners),
	}
}

// New builds a lexicon from data. Entries are trimmed, lowercased and deduplicated.
func New(data Data) *Lexicon {
	return &Lexicon{
		stopwords:   toSet(data.Stopwords),
		tools:       toSet(data.Tools),
		skills:      toSet(data.Skills),
		domain:      toSet(data.Domain),
		strongVerbs: cleanList(data.StrongVerbs),
		weakOpeners: cleanList(data.WeakOpeners),
	}
}

// Merge returns a new lexicon with override applied on top of l.
// l itself is left untouched.
func (l *Lexicon) Merge(override Data) *Lexicon {
	base := l.Data()
	return New(Data{
		Stopwords:   mergeList(base.Stopwords, override.Stopwords, override.Replace),
		Tools:       mergeList(base.Tools, override.Tools, override.Replace),
		Skills:      mergeList(base.Skills, override.Skills, override.Replace),
		Domain:      mergeList(base.Domain, override.Domain, override.Replace),
		StrongVerbs: mergeList(base.StrongVerbs, override.StrongVerbs, override.Replace),
		WeakOpeners: mergeList(base.WeakOpeners, override.WeakOpeners, override.Replace),
	})
}

// Data returns the lexicon's lists. Set-backed lists are sorted.
func (l *Lexicon) Data() Data {
	return Data{
		Stopwords:   sortedKeys(l.stopwords),
		Tools:       sortedKeys(l.tools),
		Skills:      sortedKeys(l.skills),
		Domain:      sortedKeys(l.domain),
		StrongVerbs: clone(l.strongVerbs),
		WeakOpeners: clone(l.weakOpeners),
	}
}

// IsStopword reports whether word is never a keyword
func (l *Lexicon) IsStopword(word string) bool { return l.stopwords[word] }

// IsTool reports whether word is a tool or technology keyword
func (l *Lexicon) IsTool(word string) bool { return l.tools[word] }

// IsSkill reports whether word is a product or practice skill keyword
func (l *Lexicon) IsSkill(word string) bool { return l.skills[word] }

// IsDomainSeed reports whether word is a curated domain keyword
func (l *Lexicon) IsDomainSeed(word string) bool { return l.domain[word] }

// StrongVerbs returns the action verbs that open a strong bullet
func (l *Lexicon) StrongVerbs() []string { return clone(l.strongVerbs) }

// WeakOpeners returns the phrases that open a weak bullet
func (l *Lexicon) WeakOpeners() []string { return clone(l.weakOpeners) }

// StartsWithStrongVerb reports whether lower begins with a strong verb followed by a space
func (l *Lexicon) StartsWithStrongVerb(lower string) bool {
	for _, verb := range l.strongVerbs {
		if strings.HasPrefix(lower, verb+" ") {
			return true
		}
	}
	return false
}

// StartsWithWeakOpener reports whether lower begins with a weak opener phrase
func (l *Lexicon) StartsWithWeakOpener(lower string) bool {
	for _, opener := range l.weakOpeners {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	return false
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range cleanList(words) {
		set[w] = true
	}
	return set
}

// cleanList trims, lowercases and deduplicates words, keeping first-seen order
func cleanList(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func mergeList(base, override []string, replace bool) []string {
	if override == nil {
		return base
	}
	if replace {
		return clone(override)
	}
	return append(clone(base), override...)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clone(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}
