// Package parsing turns raw resume and job description text into lowercase word tokens.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// lineBreak matches LF and CRLF line endings
var lineBreak = regexp.MustCompile(`\r?\n`)

// Normalize lowercases text and replaces every character outside [a-z0-9] and
// whitespace with a space.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if isASCIILetter(r) || isASCIIDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)
}

// NormalizeLetters lowercases text and replaces every character outside [a-z] with a space.
func NormalizeLetters(text string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if isASCIILetter(r) {
			return r
		}
		return ' '
	}, text)
}

// Tokenize splits normalized text on whitespace runs.
// Tokens keep digits, so "q3" and "2024" are words.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// TokenizeLetters splits text on runs of non-letters. "q3" becomes "q".
func TokenizeLetters(text string) []string {
	return strings.Fields(NormalizeLetters(text))
}

// WordCount counts alphanumeric tokens, so phone numbers and metrics count toward length.
func WordCount(text string) int {
	return len(Tokenize(text))
}

// TokenSet returns the distinct tokens of text produced by tokenize
func TokenSet(text string, tokenize func(string) []string) map[string]bool {
	tokens := tokenize(text)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

// SplitLines splits text into trimmed, non-empty lines
func SplitLines(text string) []string {
	raw := lineBreak.Split(text, -1)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Mode selects a tokenizer variant
type Mode string

const (
	// ModeAlphanumeric keeps letters and digits
	ModeAlphanumeric Mode = "alnum"
	// ModeLetters keeps letters only
	ModeLetters Mode = "letters"
)

// Tokenize splits text with the variant selected by m. Unknown modes fall back to alphanumeric.
func (m Mode) Tokenize(text string) []string {
	if m == ModeLetters {
		return TokenizeLetters(text)
	}
	return Tokenize(text)
}

// Valid reports whether m names a known tokenizer variant
func (m Mode) Valid() bool {
	return m == ModeAlphanumeric || m == ModeLetters
}
